// backend/src/handlers/classification_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/models"
	"github.com/username/optionsjournal/backend/src/security/validation"
	"github.com/username/optionsjournal/backend/src/services"
	"github.com/username/optionsjournal/backend/src/utils"
)

type ClassificationHandler struct {
	classificationService services.ClassificationService
}

func NewClassificationHandler(service services.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{
		classificationService: service,
	}
}

type classifyRequest struct {
	Fills []models.Fill `json:"fills"`
}

// HandleClassifyFills classifies a candidate fill set posted as JSON. The
// endpoint is stateless: nothing is cached or persisted.
func (h *ClassificationHandler) HandleClassifyFills(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		logger.L.Warn("Failed to decode classify request body", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	outcome, err := h.classificationService.ClassifyFills(req.Fills)
	if err != nil {
		if errors.Is(err, validation.ErrValidationFailed) {
			logger.L.Warn("Classify request failed fill validation", "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		} else {
			logger.L.Error("Internal error classifying fills", "error", err)
			utils.SendJSONError(w, "An internal error occurred while classifying fills.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		logger.L.Error("Error encoding JSON response for classification", "error", err)
	}
}

// HandleGetUploadResult re-serves a cached upload result by its token, with
// ETag support so polling clients can skip unchanged payloads.
func (h *ClassificationHandler) HandleGetUploadResult(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	if uploadID == "" {
		utils.SendJSONError(w, "upload ID is required", http.StatusBadRequest)
		return
	}

	result, err := h.classificationService.GetUploadResult(uploadID)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotFound) {
			utils.SendJSONError(w, "Upload result not found or expired.", http.StatusNotFound)
		} else {
			logger.L.Error("Error retrieving upload result", "uploadID", uploadID, "error", err)
			utils.SendJSONError(w, "An internal error occurred while retrieving the upload result.", http.StatusInternalServerError)
		}
		return
	}

	currentETag, etagErr := utils.GenerateETag(result)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for upload result", "uploadID", uploadID, "error", etagErr)
	}

	w.Header().Set("Cache-Control", "no-cache, private")
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, cETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(cETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for upload result", "uploadID", uploadID, "error", err)
	}
}
