package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rowanvale/brandsite-api/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeUsecaseError maps pipeline errors to the browser contract: validation
// and lookup failures are 400 with the message verbatim, everything else is
// a 500 with the usecase's generic message.
func writeUsecaseError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
