package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rowanvale/brandsite-api/internal/infra/http/middleware"
	"github.com/rowanvale/brandsite-api/internal/usecase"
)

type ResourceDownloader interface {
	Execute(ctx context.Context, input usecase.DownloadResourceInput) (*usecase.DownloadResourceOutput, error)
}

type ResourceHandler struct {
	UseCase     ResourceDownloader
	rateLimiter *RateLimiter
}

func NewResourceHandler(uc ResourceDownloader, rl *RateLimiter) *ResourceHandler {
	return &ResourceHandler{UseCase: uc, rateLimiter: rl}
}

// HandleDownload accepts the lead-capture form for a resource and answers
// with the file URL on success. The slug may come from the route or the body.
func (h *ResourceHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.DownloadResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if slug := chi.URLParam(r, "slug"); slug != "" {
		input.ResourceSlug = slug
	}

	input.UserAgent = r.UserAgent()
	if input.Referrer == "" {
		input.Referrer = r.Referer()
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordSubmission("resource_download", "error")
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSubmission("resource_download", "ok")
	writeJSON(w, http.StatusOK, output)
}
