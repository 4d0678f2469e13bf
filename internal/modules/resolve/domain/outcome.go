package domain

import (
	contentDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	identityDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
)

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

// FailureKind classifies a failed resolution
// ENUM(permanent,transient,configuration)
type FailureKind string

// Failure is a typed per-reference failure. Permanent failures are
// cacheable, transient ones are not, and configuration failures mean the
// reference needs a privileged identity that is not set up.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return string(f.Kind) + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Resolution is the outcome for one reference: exactly one of Content or
// Failure is set.
type Resolution struct {
	Reference linkDomain.Reference
	Content   *contentDomain.Content
	Failure   *Failure
	// Identity that served the fetch; empty on failure or cache hit.
	Identity identityDomain.Role
	// CacheHit marks outcomes served without a fetch.
	CacheHit bool
}

// OK reports whether the reference resolved to deliverable content.
func (r Resolution) OK() bool {
	return r.Content != nil
}
