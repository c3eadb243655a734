package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rowanvale/brandsite-api/internal/infra/http/middleware"
	"github.com/rowanvale/brandsite-api/internal/usecase"
)

type ContactSubmitter interface {
	Execute(ctx context.Context, input usecase.ContactInput) (*usecase.SubmitOutput, error)
}

type ContactHandler struct {
	UseCase     ContactSubmitter
	rateLimiter *RateLimiter
}

func NewContactHandler(uc ContactSubmitter, rl *RateLimiter) *ContactHandler {
	return &ContactHandler{UseCase: uc, rateLimiter: rl}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Attribution comes from the request, not from what the page claims.
	input.UserAgent = r.UserAgent()
	if input.Referrer == "" {
		input.Referrer = r.Referer()
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordSubmission("contact", "error")
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSubmission("contact", "ok")
	writeJSON(w, http.StatusOK, output)
}
