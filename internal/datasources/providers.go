package datasources

import (
	"context"

	"github.com/empowerverse/personalized-feed/internal/domain"
)

// UserGetter resolves a username against the upstream user directory.
// Returns domain.ErrUserNotFound when no such user exists.
type UserGetter interface {
	GetUserByUsername(ctx context.Context, username string) (domain.UserProfile, error)
}

// InteractionSource lists recent interaction records of one type across all
// users, as reported by the upstream API.
type InteractionSource interface {
	ListInteractions(
		ctx context.Context,
		interactionType domain.InteractionType,
	) ([]domain.InteractionRecord, error)
}

// InteractionBundleFetcher assembles everything known about one user's
// history for a single feed request.
type InteractionBundleFetcher interface {
	FetchUserInteractions(ctx context.Context, username string) (domain.UserInteractionBundle, error)
}

// PostCataloger returns the full current post catalog as one flattened
// collection.
type PostCataloger interface {
	ListAllPosts(ctx context.Context) ([]domain.Post, error)
}

// UpstreamPinger checks connectivity to the upstream content API.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}
