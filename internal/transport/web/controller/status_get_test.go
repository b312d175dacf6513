package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/empowerverse/personalized-feed/internal/datasources/mocks"
)

func TestStatusGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		pingErr      error
		wantStatus   int
		wantResponse StatusResponse
	}{
		{
			name:         "upstream_healthy",
			wantStatus:   http.StatusOK,
			wantResponse: StatusResponse{Status: "ok", Upstream: "ok"},
		},
		{
			name:         "upstream_unreachable",
			pingErr:      errors.New("connection refused"),
			wantStatus:   http.StatusServiceUnavailable,
			wantResponse: StatusResponse{Status: "degraded", Upstream: "unreachable"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pinger := mocks.NewMockUpstreamPinger(t)
			pinger.EXPECT().
				Ping(mock.Anything).
				Return(tc.pingErr)

			controller := StatusGet{Pinger: pinger}

			req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/status", nil))
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var response StatusResponse
			err := json.NewDecoder(rec.Body).Decode(&response)
			require.NoError(t, err)
			assert.Equal(t, tc.wantResponse, response)
		})
	}
}
