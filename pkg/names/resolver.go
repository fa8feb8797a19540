package names

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/confluence-tools/confluence-md-export/pkg/confluence"
	"github.com/confluence-tools/confluence-md-export/pkg/logging"
)

// FallbackCreator is returned for pages without a creator account id.
const FallbackCreator = "不明な作成者"

// UserFetcher is the lookup surface the resolver needs from the API client.
type UserFetcher interface {
	GetUser(ctx context.Context, baseURL, accountID string) (*confluence.User, error)
}

// Resolver turns account ids into display names, consulting the run-scoped
// cache before the network so that each distinct account id costs at most
// one lookup per batch run.
type Resolver struct {
	client UserFetcher
	cache  *Cache
	logger zerolog.Logger
}

// NewResolver creates a resolver backed by client and cache.
func NewResolver(client UserFetcher, cache *Cache) *Resolver {
	if client == nil {
		panic("user fetcher cannot be nil")
	}
	if cache == nil {
		panic("cache cannot be nil")
	}
	return &Resolver{
		client: client,
		cache:  cache,
		logger: logging.NewLogger("names"),
	}
}

// Resolve returns the display name for accountID.
//
// An empty accountID yields FallbackCreator without a network call. A cache
// hit returns immediately. On lookup failure the raw account id is returned
// and nothing is cached, so a later page by the same author retries the
// lookup. A 200 with a missing displayName field caches the account id
// itself.
func (r *Resolver) Resolve(ctx context.Context, baseURL, accountID string) string {
	if accountID == "" {
		return FallbackCreator
	}

	if name, ok := r.cache.Get(accountID); ok {
		r.logger.Debug().Str("account_id", accountID).Msg("Name cache hit")
		return name
	}

	user, err := r.client.GetUser(ctx, baseURL, accountID)
	if err != nil {
		LookupFailures.Inc()
		r.logger.Warn().Err(err).Str("account_id", accountID).Msg("User lookup failed")
		return accountID
	}

	name := user.DisplayName
	if name == "" {
		name = accountID
	}
	r.cache.Set(accountID, name)

	return name
}
