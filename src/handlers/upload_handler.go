// backend/src/handlers/upload_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/optionsjournal/backend/src/config"
	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/security/validation"
	"github.com/username/optionsjournal/backend/src/services"
	"github.com/username/optionsjournal/backend/src/utils"
)

type UploadHandler struct {
	classificationService services.ClassificationService
}

func NewUploadHandler(service services.ClassificationService) *UploadHandler {
	return &UploadHandler{
		classificationService: service,
	}
}

// HandleUpload accepts a broker fill export as multipart form data, runs it
// through the source parser and the classification engine, and returns the
// advisory result together with an upload token for later re-reads.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB (header check)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	source := validation.StripUnprintable(r.FormValue("source"))
	if source == "" {
		source = "generic"
	}

	logger.L.Info("Processing fill upload", "filename", fileHeader.Filename, "source", source, "detectedType", detectedContentType)
	result, err := h.classificationService.ProcessUpload(file, source)
	if err != nil {
		if errors.Is(err, validation.ErrValidationFailed) {
			logger.L.Warn("Upload failed fill validation", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Fill validation failed: %v", err), http.StatusBadRequest)
		} else if errors.Is(err, services.ErrParsingFailed) {
			logger.L.Warn("Upload failed during parsing", "filename", fileHeader.Filename, "source", source, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing fill export: %v", err), http.StatusBadRequest)
		} else {
			logger.L.Error("Internal error processing upload", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the file. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for upload result", "error", err)
	}
}
