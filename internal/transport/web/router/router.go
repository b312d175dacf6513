package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/empowerverse/personalized-feed/internal/command"
	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
	"github.com/empowerverse/personalized-feed/internal/transport/web/controller"
)

func MakeRouter(
	feedCommand command.Command[command.GetFeedRequest, domain.FeedPage],
	pinger datasources.UpstreamPinger,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssPageSize int,
	rssCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/feed", controller.FeedGet{
		Command: feedCommand,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/status", controller.StatusGet{
		Pinger: pinger,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Command:         feedCommand,
		PageSize:        rssPageSize,
		CacheMaxAge:     rssCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
