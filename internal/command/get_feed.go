package command

import (
	"context"
	"fmt"
	"time"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

// GetFeedRequest is the request for the GetFeed command.
type GetFeedRequest struct {
	Username    string
	ProjectCode string
	Page        int
	PageSize    int
}

// GetFeed assembles one page of a user's personalized feed. Users with viewing
// or liking history get the ranked path; everyone else gets the cold-start
// path over the same candidate pool.
type GetFeed struct {
	Bundles    datasources.InteractionBundleFetcher
	Catalog    datasources.PostCataloger
	Cache      datasources.FeedCache
	RankConfig domain.RankConfig
	ColdStart  domain.ColdStartConfig
	Now        func() time.Time
}

// NewGetFeed creates a properly initialized GetFeed command.
func NewGetFeed(
	bundles datasources.InteractionBundleFetcher,
	catalog datasources.PostCataloger,
	cache datasources.FeedCache,
	rankConfig domain.RankConfig,
	coldStart domain.ColdStartConfig,
) *GetFeed {
	if cache == nil {
		cache = datasources.NullFeedCache{}
	}
	return &GetFeed{
		Bundles:    bundles,
		Catalog:    catalog,
		Cache:      cache,
		RankConfig: rankConfig,
		ColdStart:  coldStart,
		Now:        time.Now,
	}
}

func (c *GetFeed) Execute(ctx context.Context, req GetFeedRequest) (domain.FeedPage, error) {
	logger := domain.LoggerFromContext(ctx)

	key := feedCacheKey(req)
	if page, ok, err := c.Cache.GetFeedPage(ctx, key); err != nil {
		logger.WarnContext(ctx, "feed cache read failed", "key", key, "error", err)
	} else if ok {
		return page, nil
	}

	bundle, err := c.Bundles.FetchUserInteractions(ctx, req.Username)
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("fetching user interactions: %w", err)
	}

	catalog, err := c.Catalog.ListAllPosts(ctx)
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("listing posts: %w", err)
	}

	if req.ProjectCode != "" {
		catalog = filterByProjectCode(catalog, req.ProjectCode)
	}

	var ranked []domain.Post
	if bundle.HasHistory() {
		profile := domain.ExtractInterestProfile(bundle, catalog)
		ranked = domain.RankPosts(bundle, catalog, profile, c.RankConfig, c.now())
	} else {
		ranked = domain.ColdStartPosts(catalog, c.ColdStart)
	}

	page := domain.PaginatePosts(ranked, req.Page, req.PageSize)

	if err := c.Cache.SetFeedPage(ctx, key, page); err != nil {
		logger.WarnContext(ctx, "feed cache write failed", "key", key, "error", err)
	}

	return page, nil
}

func (c *GetFeed) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func feedCacheKey(req GetFeedRequest) string {
	return fmt.Sprintf("feed:%s:%s:%d:%d", req.Username, req.ProjectCode, req.Page, req.PageSize)
}

func filterByProjectCode(posts []domain.Post, projectCode string) []domain.Post {
	filtered := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if post.ProjectCode == projectCode {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
