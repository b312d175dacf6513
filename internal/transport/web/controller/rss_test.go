package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/empowerverse/personalized-feed/internal/command"
	cmdmocks "github.com/empowerverse/personalized-feed/internal/command/mocks"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

func TestRSS_ServeHTTP(t *testing.T) {
	feedCmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)
	feedCmd.EXPECT().
		Execute(mock.Anything, command.GetFeedRequest{Username: "kinha", Page: 1, PageSize: 20}).
		Return(domain.FeedPage{
			Items: []domain.Post{
				{
					ID:        "p1",
					UserID:    "creator1",
					Title:     "Morning Run",
					VideoLink: "https://cdn.example.com/p1.mp4",
					CreatedAt: "2024-05-01 09:30:00",
				},
			},
			Page:       1,
			PageSize:   20,
			TotalItems: 1,
			TotalPages: 1,
		}, nil)

	controller := RSS{
		FeedHostname:    "https://feed.example.com",
		FeedPath:        "/rss",
		FeedAuthorName:  "EmpowerVerse",
		FeedAuthorEmail: "feed@example.com",
		Command:         feedCmd,
		PageSize:        20,
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/rss?username=kinha", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Morning Run")
	assert.Contains(t, body, "https://cdn.example.com/p1.mp4")
	assert.Contains(t, body, "Personalized feed for kinha")
}

func TestRSS_ServeHTTP_MissingUsername(t *testing.T) {
	feedCmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)

	controller := RSS{Command: feedCmd, PageSize: 20}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/rss", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRSS_ServeHTTP_UnknownUser(t *testing.T) {
	feedCmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)
	feedCmd.EXPECT().
		Execute(mock.Anything, command.GetFeedRequest{Username: "ghost", Page: 1, PageSize: 20}).
		Return(domain.FeedPage{}, domain.ErrUserNotFound)

	controller := RSS{Command: feedCmd, PageSize: 20}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/rss?username=ghost", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
