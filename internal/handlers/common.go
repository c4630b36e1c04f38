package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/labeling"
	"github.com/lehigh-university-libraries/labelcheck/internal/models"
)

const (
	// maxVerifyBody covers one base64 image plus the expected values
	maxVerifyBody = 15 * 1024 * 1024
	maxBatchBody  = 100 * 1024 * 1024
)

type Handler struct {
	labelService *labeling.Service
	fetcher      *images.Fetcher
	defaults     labeling.Options
}

// New creates a handler. defaults supplies the provider, model, timeout and
// concurrency used when a request leaves them empty.
func New(labelService *labeling.Service, fetcher *images.Fetcher, defaults labeling.Options) *Handler {
	return &Handler{
		labelService: labelService,
		fetcher:      fetcher,
		defaults:     defaults,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	h.writeJSONStatus(w, http.StatusOK, data)
}

func (h *Handler) writeJSONStatus(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message, "status", code)
	h.writeJSONStatus(w, code, models.ErrorResponse{Error: message})
}

func (h *Handler) options(provider, model string) labeling.Options {
	opts := h.defaults
	if provider != "" {
		opts.Provider = provider
	}
	if model != "" {
		opts.Model = model
	}
	return opts
}
