package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rowanvale/brandsite-api/internal/infra/http/middleware"
	"github.com/rowanvale/brandsite-api/internal/usecase"
)

type NewsletterSubscriber interface {
	Execute(ctx context.Context, input usecase.NewsletterInput) (*usecase.SubmitOutput, error)
}

type NewsletterHandler struct {
	UseCase     NewsletterSubscriber
	rateLimiter *RateLimiter
}

func NewNewsletterHandler(uc NewsletterSubscriber, rl *RateLimiter) *NewsletterHandler {
	return &NewsletterHandler{UseCase: uc, rateLimiter: rl}
}

func (h *NewsletterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.NewsletterInput
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
		middleware.RecordSubmission("newsletter", "error")
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSubmission("newsletter", "ok")
	writeJSON(w, http.StatusOK, output)
}
