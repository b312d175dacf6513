package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/empowerverse/personalized-feed/internal/command"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

type FeedGet struct {
	Command command.Command[command.GetFeedRequest, domain.FeedPage]
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := r.URL.Query().Get("username")
	if username == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	feedPage, err := c.Command.Execute(ctx, command.GetFeedRequest{
		Username:    username,
		ProjectCode: r.URL.Query().Get("project_code"),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to assemble feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if feedPage.Items == nil {
		feedPage.Items = []domain.Post{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(feedPage); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
