package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/reshetovitsme/tg-restricted-relay/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-restricted-relay/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentity scripts a sequence of fetch outcomes and counts calls.
type fakeIdentity struct {
	role    domain.Role
	results []fetchResult
	calls   atomic.Int64
}

type fetchResult struct {
	msg *models.Message
	err error
}

func (f *fakeIdentity) Role() domain.Role { return f.role }

func (f *fakeIdentity) Fetch(ctx context.Context, ref linkDomain.Reference) (*models.Message, error) {
	n := int(f.calls.Add(1)) - 1
	if n >= len(f.results) {
		n = len(f.results) - 1
	}
	r := f.results[n]
	return r.msg, r.err
}

func accessErr(role domain.Role, kind domain.AccessKind) error {
	return &domain.AccessError{Kind: kind, Role: role, Err: errors.New("scripted")}
}

func testConfig(order config.IdentityOrder) *config.Config {
	return &config.Config{
		IdentityOrder:  order,
		FetchTimeout:   1,
		RetryBackoffMS: 1,
	}
}

var ref = linkDomain.Reference{ChannelKey: "examplechan", MessageID: 42}

func TestRouter_FullAccessFirstSuccess(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{{msg: &models.Message{Text: "ok"}}}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{Text: "nope"}}}}
	r := New(testConfig(config.IdentityOrderFullAccessFirst), svc, full)

	msg, role, err := r.Fetch(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Text)
	assert.Equal(t, domain.RoleFullAccess, role)
	assert.EqualValues(t, 1, full.calls.Load())
	assert.EqualValues(t, 0, svc.calls.Load())
}

func TestRouter_ForbiddenEscalatesToService(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{
		{err: accessErr(domain.RoleFullAccess, domain.AccessKindForbidden)},
	}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{Text: "fallback"}}}}
	r := New(testConfig(config.IdentityOrderFullAccessFirst), svc, full)

	msg, role, err := r.Fetch(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, "fallback", msg.Text)
	assert.Equal(t, domain.RoleService, role)
}

func TestRouter_NotFoundIsTerminal(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{
		{err: accessErr(domain.RoleFullAccess, domain.AccessKindNotFound)},
	}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{}}}}
	r := New(testConfig(config.IdentityOrderFullAccessFirst), svc, full)

	_, _, err := r.Fetch(context.Background(), ref)

	var accessError *domain.AccessError
	require.ErrorAs(t, err, &accessError)
	assert.Equal(t, domain.AccessKindNotFound, accessError.Kind)
	// The service identity must not be tried for a dead message
	assert.EqualValues(t, 0, svc.calls.Load())
}

func TestRouter_TransientRetriedOnce(t *testing.T) {
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{
		{err: accessErr(domain.RoleService, domain.AccessKindNetwork)},
		{msg: &models.Message{Text: "second try"}},
	}}
	r := New(testConfig(config.IdentityOrderServiceFirst), svc, nil)

	msg, _, err := r.Fetch(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, "second try", msg.Text)
	assert.EqualValues(t, 2, svc.calls.Load())
}

func TestRouter_TransientSurfacesAfterRetry(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{
		{err: accessErr(domain.RoleFullAccess, domain.AccessKindNetwork)},
	}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{}}}}
	r := New(testConfig(config.IdentityOrderFullAccessFirst), svc, full)

	_, _, err := r.Fetch(context.Background(), ref)

	var accessError *domain.AccessError
	require.ErrorAs(t, err, &accessError)
	assert.Equal(t, domain.AccessKindNetwork, accessError.Kind)
	// One attempt plus exactly one retry, and no escalation
	assert.EqualValues(t, 2, full.calls.Load())
	assert.EqualValues(t, 0, svc.calls.Load())
}

func TestRouter_ServiceFirstOrder(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{{msg: &models.Message{Text: "full"}}}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{Text: "svc"}}}}
	r := New(testConfig(config.IdentityOrderServiceFirst), svc, full)

	msg, role, err := r.Fetch(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, "svc", msg.Text)
	assert.Equal(t, domain.RoleService, role)
}

func TestRouter_AllForbidden(t *testing.T) {
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{
		{err: accessErr(domain.RoleFullAccess, domain.AccessKindForbidden)},
	}}
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{
		{err: accessErr(domain.RoleService, domain.AccessKindForbidden)},
	}}
	r := New(testConfig(config.IdentityOrderFullAccessFirst), svc, full)

	_, _, err := r.Fetch(context.Background(), ref)

	var accessError *domain.AccessError
	require.ErrorAs(t, err, &accessError)
	// The terminal reason comes from the last identity tried
	assert.Equal(t, domain.RoleService, accessError.Role)
}

func TestRouter_InfrastructureErrorPassesThrough(t *testing.T) {
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{
		{err: sharedErrors.ErrClientUnavailable},
	}}
	r := New(testConfig(config.IdentityOrderServiceFirst), svc, nil)

	_, _, err := r.Fetch(context.Background(), ref)

	assert.ErrorIs(t, err, sharedErrors.ErrClientUnavailable)
}

func TestRouter_NoIdentities(t *testing.T) {
	r := New(testConfig(config.IdentityOrderFullAccessFirst), nil, nil)

	_, _, err := r.Fetch(context.Background(), ref)

	assert.ErrorIs(t, err, sharedErrors.ErrNoIdentity)
}

func TestRouter_HasFullAccess(t *testing.T) {
	svc := &fakeIdentity{role: domain.RoleService, results: []fetchResult{{msg: &models.Message{}}}}
	full := &fakeIdentity{role: domain.RoleFullAccess, results: []fetchResult{{msg: &models.Message{}}}}

	assert.False(t, New(testConfig(config.IdentityOrderFullAccessFirst), svc, nil).HasFullAccess())
	assert.True(t, New(testConfig(config.IdentityOrderFullAccessFirst), svc, full).HasFullAccess())
}
