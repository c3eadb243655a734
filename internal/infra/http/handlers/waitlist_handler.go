package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rowanvale/brandsite-api/internal/infra/http/middleware"
	"github.com/rowanvale/brandsite-api/internal/usecase"
)

type WaitlistJoiner interface {
	Execute(ctx context.Context, input usecase.WaitlistInput) (*usecase.SubmitOutput, error)
}

type WaitlistHandler struct {
	UseCase     WaitlistJoiner
	rateLimiter *RateLimiter
}

func NewWaitlistHandler(uc WaitlistJoiner, rl *RateLimiter) *WaitlistHandler {
	return &WaitlistHandler{UseCase: uc, rateLimiter: rl}
}

func (h *WaitlistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.WaitlistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	input.UserAgent = r.UserAgent()
	if input.Referrer == "" {
		input.Referrer = r.Referer()
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordSubmission("waitlist", "error")
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSubmission("waitlist", "ok")
	writeJSON(w, http.StatusOK, output)
}
