package datasources

import (
	"context"

	"github.com/empowerverse/personalized-feed/internal/domain"
)

// FeedCache is an optional time-bounded cache of assembled feed pages. The
// ranking path works identically with or without one; cache failures only
// cost a recomputation.
type FeedCache interface {
	GetFeedPage(ctx context.Context, key string) (domain.FeedPage, bool, error)
	SetFeedPage(ctx context.Context, key string, page domain.FeedPage) error
}

// NullFeedCache is a null implementation of FeedCache: every lookup misses.
type NullFeedCache struct{}

var _ FeedCache = NullFeedCache{}

func (NullFeedCache) GetFeedPage(_ context.Context, _ string) (domain.FeedPage, bool, error) {
	return domain.FeedPage{}, false, nil
}

func (NullFeedCache) SetFeedPage(_ context.Context, _ string, _ domain.FeedPage) error {
	return nil
}
