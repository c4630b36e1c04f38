package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/lehigh-university-libraries/labelcheck/internal/labeling"
	"github.com/lehigh-university-libraries/labelcheck/internal/models"
	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// HandleVerify verifies one label. It accepts either a JSON VerifyRequest or
// a multipart form with a "file" part and the expected values as form fields.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, maxVerifyBody)

	var (
		img      images.LabelImage
		expected verification.ExpectedValues
		opts     labeling.Options
		err      error
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(images.MaxFileSize); err != nil {
			h.writeError(w, "Invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		img, err = h.readUploadedImage(r)
		if err != nil {
			h.writeError(w, "Invalid image: "+err.Error(), http.StatusBadRequest)
			return
		}
		expected = expectedFromForm(r)
		opts = h.options(r.FormValue("provider"), r.FormValue("model"))
	} else {
		var request models.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if (request.Image == "" && request.ImageURL == "") || request.ExpectedValues == nil {
			h.writeError(w, "Missing required fields: image or expectedValues", http.StatusBadRequest)
			return
		}
		img, err = h.resolveImage(r.Context(), request.Image, request.ImageURL, "upload")
		if err != nil {
			h.writeError(w, "Invalid image: "+err.Error(), http.StatusBadRequest)
			return
		}
		expected = *request.ExpectedValues
		opts = h.options(request.Provider, request.Model)
	}

	result, err := h.labelService.VerifyLabel(r.Context(), img, expected, opts)
	if err != nil {
		slog.Error("Verification error", "error", err)
		h.writeJSONStatus(w, http.StatusInternalServerError, models.VerifyErrorResponse{
			Success:          false,
			Error:            err.Error(),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		})
		return
	}

	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	h.writeJSON(w, result)
}

func expectedFromForm(r *http.Request) verification.ExpectedValues {
	beverageType := verification.BeverageType(r.FormValue("beverageType"))
	if beverageType == "" {
		beverageType = verification.Spirits
	}
	return verification.ExpectedValues{
		BrandName:           strings.TrimSpace(r.FormValue("brandName")),
		ClassType:           strings.TrimSpace(r.FormValue("classType")),
		AlcoholContent:      strings.TrimSpace(r.FormValue("alcoholContent")),
		NetContents:         strings.TrimSpace(r.FormValue("netContents")),
		ProducerNameAddress: strings.TrimSpace(r.FormValue("producerNameAddress")),
		CountryOfOrigin:     strings.TrimSpace(r.FormValue("countryOfOrigin")),
		BeverageType:        beverageType,
	}
}

// HandleVerifyBatch verifies many labels. Labels whose image cannot be
// decoded are reported as failed; the batch itself only fails on a bad request.
func (h *Handler) HandleVerifyBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBody)

	var request models.BatchVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Labels) == 0 {
		h.writeError(w, "Missing or invalid labels array", http.StatusBadRequest)
		return
	}

	items := make([]labeling.BatchItem, len(request.Labels))
	for i, label := range request.Labels {
		img, err := h.resolveImage(r.Context(), label.Image, label.ImageURL, label.ImageID)
		items[i] = labeling.BatchItem{
			ID:       label.ImageID,
			Image:    img,
			Expected: label.ExpectedValues,
			Err:      err,
		}
	}

	opts := h.options(request.Provider, request.Model)
	if request.Concurrency > 0 {
		opts.Concurrency = request.Concurrency
	}

	h.writeJSON(w, h.labelService.VerifyBatch(r.Context(), items, opts))
}
