package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/labelcheck/internal/manifest"
	"github.com/lehigh-university-libraries/labelcheck/internal/models"
	"github.com/lehigh-university-libraries/labelcheck/internal/report"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// HandleTemplate serves the batch manifest CSV template
func (h *Handler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeCSV(w, "label-verification-template.csv", []byte(manifest.Template()))
}

// HandleExport converts a batch summary to the CSV export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBody)

	var summary verification.BatchSummary
	if err := json.NewDecoder(r.Body).Decode(&summary); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, &summary); err != nil {
		h.writeError(w, "Failed to build CSV: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, "verification-results.csv", buf.Bytes())
}

// HandleWarning returns the statutory government warning text
func (h *Handler) HandleWarning(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, models.WarningResponse{Text: verification.GovernmentWarningText})
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(data); err != nil {
		slog.Error("Unable to write CSV response", "err", err)
	}
}
