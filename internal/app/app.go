package app

import (
	"context"
	"fmt"

	"github.com/empowerverse/personalized-feed/internal/command"
	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/datasources/feedcache"
	"github.com/empowerverse/personalized-feed/internal/datasources/mysql"
	"github.com/empowerverse/personalized-feed/internal/datasources/socialverse"
	"github.com/empowerverse/personalized-feed/internal/transport/web/router"
	"github.com/empowerverse/personalized-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	client := socialverse.NewClient(socialverse.Config{
		BaseURL:            MustGetEnvAsString(ctx, "SOCIALVERSE_BASE_URL"),
		FlicToken:          MustGetEnvAsString(ctx, "SOCIALVERSE_FLIC_TOKEN"),
		ResonanceAlgorithm: MustGetEnvAsString(ctx, "SOCIALVERSE_RESONANCE_ALGORITHM"),
		Timeout:            MustGetEnvAsDuration(ctx, "SOCIALVERSE_TIMEOUT"),
		PageSize:           MustGetEnvAsInt(ctx, "SOCIALVERSE_PAGE_SIZE"),
	})

	archive, err := setupInteractionArchive(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up interaction archive: %w", err)
	}

	feedCache, err := setupFeedCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up feed cache: %w", err)
	}

	bundles := socialverse.NewBundleFetcher(client, client, archive)

	getFeedCmd := command.NewGetFeed(
		bundles,
		client,
		feedCache,
		DefaultRankConfig(),
		DefaultColdStartConfig(),
	)

	httpRouter, err := router.MakeRouter(
		getFeedCmd,
		client,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsInt(ctx, "RSS_FEED_PAGE_SIZE"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupInteractionArchive(ctx context.Context) (datasources.InteractionArchive, error) {
	switch driver := MustGetEnvAsString(ctx, "INTERACTION_ARCHIVE_DRIVER"); driver {
	case "null":
		return datasources.NullInteractionArchive{}, nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown interaction archive driver [%s]", driver)
	}
}

func setupFeedCache(ctx context.Context) (datasources.FeedCache, error) {
	switch driver := MustGetEnvAsString(ctx, "FEED_CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullFeedCache{}, nil
	case "memory":
		return feedcache.NewMemory(MustGetEnvAsDuration(ctx, "FEED_CACHE_TTL")), nil
	case "redis":
		cache, err := feedcache.NewRedis(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
			MustGetEnvAsDuration(ctx, "FEED_CACHE_TTL"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return cache, nil
	default:
		return nil, fmt.Errorf("unknown feed cache driver [%s]", driver)
	}
}
