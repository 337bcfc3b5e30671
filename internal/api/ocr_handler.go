package api

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/smd-system/ai-service/internal/api/shared"
	"github.com/smd-system/ai-service/internal/ocr"
	"github.com/smd-system/ai-service/internal/service"
	"github.com/smd-system/ai-service/internal/task"
)

// maxUploadBytes bounds multipart uploads held in memory.
const maxUploadBytes = 32 << 20

// OCRHandler handles OCR text extraction HTTP requests
type OCRHandler struct {
	ocr       *service.OCRService
	runner    *task.Runner
	validator *validator.Validate
}

// NewOCRHandler creates a new OCRHandler
func NewOCRHandler(ocrService *service.OCRService, runner *task.Runner) *OCRHandler {
	return &OCRHandler{
		ocr:       ocrService,
		runner:    runner,
		validator: validator.New(),
	}
}

// ExtractText handles POST /api/ocr/extract-text requests with a
// base64-encoded document body.
func (h *OCRHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	if !h.ocr.Available() {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable, "OCR engine is not available")
		return
	}

	var req OCRRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid base64 file data")
		return
	}
	if len(content) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "File data is empty")
		return
	}

	h.submit(w, r, task.PrefixOCR, content, req.FileType, req.CallbackURL,
		"OCR text extraction started")
}

// UploadFile handles POST /api/ocr/upload-file multipart requests. The
// file type is inferred from the uploaded filename.
func (h *OCRHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if !h.ocr.Available() {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable, "OCR engine is not available")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	if len(content) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "File data is empty")
		return
	}

	callbackURL := r.FormValue("callback_url")
	if err := h.validator.Var(callbackURL, "omitempty,url"); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid callback_url")
		return
	}

	fileType := ocr.FileTypeImage
	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		fileType = ocr.FileTypePDF
	}

	h.submit(w, r, task.PrefixOCRUpload, content, fileType, callbackURL,
		"File uploaded, OCR text extraction started")
}

func (h *OCRHandler) submit(
	w http.ResponseWriter,
	r *http.Request,
	prefix string,
	content []byte,
	fileType string,
	callbackURL string,
	message string,
) {
	id := task.FingerprintBytes(prefix, content)

	t := task.New(id, task.TypeOCRExtract, callbackURL, func(ctx context.Context) (any, error) {
		return h.ocr.Extract(ctx, content, fileType)
	})

	if err := h.runner.Submit(r.Context(), t); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SubmitResponse{
		TaskID:  id,
		Status:  "processing",
		Message: message,
	})
}
