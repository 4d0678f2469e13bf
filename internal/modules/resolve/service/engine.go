package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	contentService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/service"
	identityDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	identityService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/service"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/cache"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
	"golang.org/x/sync/singleflight"
)

// Engine resolves batches of references: cache lookup, identity fetch on
// miss, normalization, cache write. References resolve concurrently but
// output order always matches input order, and one reference failing never
// aborts the others. Only an unusable identity client aborts the batch.
type Engine struct {
	router *identityService.Router
	cache  *cache.Cache

	// Collapses concurrent fetches of the same key, including duplicate
	// links within one batch, so each key is fetched at most once.
	group singleflight.Group
}

// New creates a retrieval engine.
func New(router *identityService.Router, resolutionCache *cache.Cache) *Engine {
	return &Engine{
		router: router,
		cache:  resolutionCache,
	}
}

// ResolveAll resolves every reference independently and returns outcomes
// in input order. The returned error is non-nil only for infrastructure
// faults, which abort the whole batch.
func (e *Engine) ResolveAll(ctx context.Context, refs []linkDomain.Reference) ([]domain.Resolution, error) {
	results := make([]domain.Resolution, len(refs))
	errs := make([]error, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref linkDomain.Reference) {
			defer wg.Done()
			results[i], errs[i] = e.resolve(ctx, ref)
		}(i, ref)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// flightResult is the shared outcome of a deduplicated fetch.
type flightResult struct {
	entry    cache.Entry
	identity identityDomain.Role
	cacheHit bool
}

func (e *Engine) resolve(ctx context.Context, ref linkDomain.Reference) (domain.Resolution, error) {
	key := ref.Key()

	if entry, ok := e.cache.Get(key); ok {
		return resolution(ref, entry, "", true), nil
	}

	v, err, _ := e.group.Do(key.String(), func() (any, error) {
		// A concurrent resolution of the same key may have filled the
		// cache while this call waited its turn
		if entry, ok := e.cache.Get(key); ok {
			return flightResult{entry: entry, cacheHit: true}, nil
		}

		msg, role, err := e.router.Fetch(ctx, ref)
		if err != nil {
			failure := e.classifyFailure(err)
			if failure == nil {
				return nil, err
			}
			e.cache.PutFailure(key, failure)
			slog.Info("Resolution failed",
				"reference", key.String(), "kind", failure.Kind)
			return flightResult{entry: cache.Entry{Failure: failure}}, nil
		}

		content := contentService.Normalize(msg, ref)
		e.cache.PutContent(key, content)
		slog.Info("Resolved message",
			"reference", key.String(), "identity", role, "kind", content.Kind)
		return flightResult{entry: cache.Entry{Content: &content}, identity: role}, nil
	})
	if err != nil {
		return domain.Resolution{}, err
	}

	fr := v.(flightResult)
	return resolution(ref, fr.entry, fr.identity, fr.cacheHit), nil
}

// classifyFailure turns an access error into a typed per-reference
// failure. A nil return marks an infrastructure fault.
func (e *Engine) classifyFailure(err error) *domain.Failure {
	var accessErr *identityDomain.AccessError
	if !errors.As(err, &accessErr) {
		return nil
	}

	switch accessErr.Kind {
	case identityDomain.AccessKindNotFound:
		return &domain.Failure{Kind: domain.FailureKindPermanent, Err: accessErr}
	case identityDomain.AccessKindForbidden:
		// Forbidden with no privileged identity to escalate to is a
		// setup problem, not a dead message
		if !e.router.HasFullAccess() {
			return &domain.Failure{Kind: domain.FailureKindConfiguration, Err: accessErr}
		}
		return &domain.Failure{Kind: domain.FailureKindPermanent, Err: accessErr}
	default:
		return &domain.Failure{Kind: domain.FailureKindTransient, Err: accessErr}
	}
}

func resolution(ref linkDomain.Reference, entry cache.Entry, identityRole identityDomain.Role, cacheHit bool) domain.Resolution {
	return domain.Resolution{
		Reference: ref,
		Content:   entry.Content,
		Failure:   entry.Failure,
		Identity:  identityRole,
		CacheHit:  cacheHit,
	}
}
