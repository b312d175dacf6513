package controller

import (
	"encoding/json"
	"net/http"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

type StatusGet struct {
	Pinger datasources.UpstreamPinger
}

type StatusResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

func (c StatusGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	response := StatusResponse{Status: "ok", Upstream: "ok"}
	code := http.StatusOK

	if err := c.Pinger.Ping(ctx); err != nil {
		logger.WarnContext(ctx, "upstream ping failed", "error", err)

		response = StatusResponse{Status: "degraded", Upstream: "unreachable"}
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "unable to write status to response", "error", err)
	}
}
