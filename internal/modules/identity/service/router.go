package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/reshetovitsme/tg-restricted-relay/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-restricted-relay/internal/shared/errors"
)

// Router decides which identity fetches a reference and in what order.
// Forbidden-class failures escalate to the next identity, not-found is
// terminal, transient failures get a single retry with backoff and are
// then surfaced without escalation.
type Router struct {
	identities   []domain.Identity
	fetchTimeout time.Duration
	retryBackoff time.Duration
	fullAccess   bool
}

// New builds a router from the configured identities. fullAccess may be
// nil when the privileged identity is not configured.
func New(cfg *config.Config, service domain.Identity, fullAccess domain.Identity) *Router {
	r := &Router{
		fetchTimeout: cfg.FetchTimeoutDuration(),
		retryBackoff: cfg.RetryBackoff(),
		fullAccess:   fullAccess != nil,
	}

	switch cfg.IdentityOrder {
	case config.IdentityOrderServiceFirst:
		r.identities = appendIdentity(r.identities, service)
		r.identities = appendIdentity(r.identities, fullAccess)
	default:
		r.identities = appendIdentity(r.identities, fullAccess)
		r.identities = appendIdentity(r.identities, service)
	}

	return r
}

func appendIdentity(ids []domain.Identity, id domain.Identity) []domain.Identity {
	if id == nil {
		return ids
	}
	return append(ids, id)
}

// HasFullAccess reports whether the privileged identity is available.
func (r *Router) HasFullAccess() bool {
	return r.fullAccess
}

// Fetch tries the identities in order and returns exactly one message or
// the access error from the last identity tried. Non-access errors mean
// the client itself is broken and are passed through untouched.
func (r *Router) Fetch(ctx context.Context, ref linkDomain.Reference) (*models.Message, domain.Role, error) {
	if len(r.identities) == 0 {
		return nil, "", sharedErrors.ErrNoIdentity
	}

	var last *domain.AccessError
	for _, id := range r.identities {
		msg, err := r.fetchWithRetry(ctx, id, ref)
		if err == nil {
			return msg, id.Role(), nil
		}

		var accessErr *domain.AccessError
		if !errors.As(err, &accessErr) {
			return nil, "", err
		}
		last = accessErr

		switch accessErr.Kind {
		case domain.AccessKindForbidden:
			slog.Debug("Identity denied, escalating",
				"identity", id.Role(), "reference", ref.Key().String())
			continue
		default:
			// not_found is terminal; transient failures already used
			// their retry and surface as-is
			return nil, "", accessErr
		}
	}

	return nil, "", last
}

// fetchWithRetry runs one attempt under the per-fetch timeout, plus a
// single backed-off retry when the failure is transient.
func (r *Router) fetchWithRetry(ctx context.Context, id domain.Identity, ref linkDomain.Reference) (*models.Message, error) {
	msg, err := r.fetchOnce(ctx, id, ref)
	if err == nil {
		return msg, nil
	}

	var accessErr *domain.AccessError
	if !errors.As(err, &accessErr) || !accessErr.Kind.Transient() {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, accessErr
	case <-time.After(r.retryBackoff):
	}

	slog.Debug("Retrying fetch after transient failure",
		"identity", id.Role(), "reference", ref.Key().String(), "kind", accessErr.Kind)

	return r.fetchOnce(ctx, id, ref)
}

func (r *Router) fetchOnce(ctx context.Context, id domain.Identity, ref linkDomain.Reference) (*models.Message, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	return id.Fetch(fetchCtx, ref)
}
