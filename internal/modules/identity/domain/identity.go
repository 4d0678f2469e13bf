package domain

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot/models"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
)

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

// Role names the two retrieval identities
// ENUM(service,full_access)
type Role string

// AccessKind classifies a failed fetch attempt
// ENUM(not_found,forbidden,rate_limited,network)
type AccessKind string

// Transient reports whether the failure is worth a retry with the same
// identity. Forbidden escalates to the next identity instead, and
// not_found is terminal for the whole reference.
func (k AccessKind) Transient() bool {
	return k == AccessKindRateLimited || k == AccessKindNetwork
}

// AccessError is the typed outcome of a failed fetch attempt.
type AccessError struct {
	Kind AccessKind
	Role Role
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s identity: %s: %v", e.Role, e.Kind, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Identity is one Telegram login able to fetch messages by reference.
// Fetch returns either the platform message or an *AccessError; any other
// error means the identity client itself is unusable.
type Identity interface {
	Role() Role
	Fetch(ctx context.Context, ref linkDomain.Reference) (*models.Message, error)
}
