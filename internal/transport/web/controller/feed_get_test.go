package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
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

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func TestFeedGet_ServeHTTP(t *testing.T) {
	feedPage := domain.FeedPage{
		Items: []domain.Post{
			{ID: "p1", UserID: "creator1", Title: "First"},
			{ID: "p2", UserID: "creator2", Title: "Second"},
		},
		Page:       1,
		PageSize:   20,
		TotalItems: 2,
		TotalPages: 1,
	}

	cases := []struct {
		name       string
		target     string
		wantReq    *command.GetFeedRequest
		page       domain.FeedPage
		commandErr error
		wantStatus int
		wantPage   *domain.FeedPage
	}{
		{
			name:       "successful_feed",
			target:     "/v1/feed?username=kinha",
			wantReq:    &command.GetFeedRequest{Username: "kinha", Page: 1, PageSize: 20},
			page:       feedPage,
			wantStatus: http.StatusOK,
			wantPage:   &feedPage,
		},
		{
			name:   "explicit_pagination_and_project_code",
			target: "/v1/feed?username=kinha&project_code=motivation&page=2&page_size=5",
			wantReq: &command.GetFeedRequest{
				Username:    "kinha",
				ProjectCode: "motivation",
				Page:        2,
				PageSize:    5,
			},
			page:       feedPage,
			wantStatus: http.StatusOK,
			wantPage:   &feedPage,
		},
		{
			name:       "missing_username",
			target:     "/v1/feed",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_page",
			target:     "/v1/feed?username=kinha&page=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_page_size",
			target:     "/v1/feed?username=kinha&page_size=bogus",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_user",
			target:     "/v1/feed?username=ghost",
			wantReq:    &command.GetFeedRequest{Username: "ghost", Page: 1, PageSize: 20},
			commandErr: domain.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "command_error",
			target:     "/v1/feed?username=kinha",
			wantReq:    &command.GetFeedRequest{Username: "kinha", Page: 1, PageSize: 20},
			commandErr: errors.New("upstream down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feedCmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)

			if tc.wantReq != nil {
				feedCmd.EXPECT().
					Execute(mock.Anything, *tc.wantReq).
					Return(tc.page, tc.commandErr)
			}

			controller := FeedGet{
				Command: feedCmd,
			}

			req := testContext()(httptest.NewRequest(http.MethodGet, tc.target, nil))
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantPage != nil {
				var got domain.FeedPage
				err := json.NewDecoder(rec.Body).Decode(&got)
				require.NoError(t, err)
				assert.Equal(t, *tc.wantPage, got)
			}
		})
	}
}

func TestFeedGet_ServeHTTP_EmptyFeedEncodesEmptyList(t *testing.T) {
	feedCmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)
	feedCmd.EXPECT().
		Execute(mock.Anything, command.GetFeedRequest{Username: "kinha", Page: 1, PageSize: 20}).
		Return(domain.FeedPage{Page: 1, PageSize: 20, TotalPages: 1}, nil)

	controller := FeedGet{Command: feedCmd}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/feed?username=kinha", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
