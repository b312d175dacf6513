package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/empowerverse/personalized-feed/internal/command"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Command         command.Command[command.GetFeedRequest, domain.FeedPage]
	PageSize        int
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := r.URL.Query().Get("username")
	if username == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	feedPage, err := c.Command.Execute(ctx, command.GetFeedRequest{
		Username:    username,
		ProjectCode: r.URL.Query().Get("project_code"),
		Page:        1,
		PageSize:    c.PageSize,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to assemble feed for RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Personalized feed for %s", username),
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Top motivational content picked for this user",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, post := range feedPage.Items {
		item := &feeds.Item{
			Id:          post.ID,
			IsPermaLink: "false",
			Title:       post.Title,
			Link:        &feeds.Link{Href: post.VideoLink},
			Author:      &feeds.Author{Name: post.UserID},
		}
		if created, ok := domain.ParsePostTime(post.CreatedAt); ok {
			item.Created = created
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
