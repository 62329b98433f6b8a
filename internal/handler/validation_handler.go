package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"volumetrico/internal/domain"
	"volumetrico/internal/export"
	"volumetrico/internal/middleware"
	"volumetrico/internal/service"
)

// ValidationHandler handles report validation endpoints.
type ValidationHandler struct {
	validationService service.ValidationService
	maxUploadBytes    int64
	now               func() time.Time
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validationService service.ValidationService, maxUploadBytes int64) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
		maxUploadBytes:    maxUploadBytes,
		now:               time.Now,
	}
}

// ValidateObjectRequest is the body of POST /reports/validate-object.
type ValidateObjectRequest struct {
	Key           string `json:"key" binding:"required"`
	CheckFileName *bool  `json:"check_filename"`
}

// Validate handles POST /api/v1/reports/validate
// @Summary Validate a volumetric report
// @Description Upload a .json report; responds with the error list, or with a CSV/XLSX sheet when format is set
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Report to validate (.json)"
// @Param format query string false "csv or xlsx"
// @Param check_filename query bool false "Override the file-name check"
// @Param strict query bool false "Override the top-level key allowlist check"
// @Success 200 {object} APIResponse{data=service.ValidationResult}
// @Failure 400 {object} APIResponse "Missing file, invalid JSON or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Router /reports/validate [post]
func (h *ValidationHandler) Validate(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	checkFileName, ok := optionalBool(c, "check_filename")
	if !ok {
		return
	}
	strict, ok := optionalBool(c, "strict")
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		if c.Request.ContentLength > h.maxUploadBytes {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.validationService.Validate(c.Request.Context(), service.ValidateInput{
		FileName:       header.Filename,
		Body:           file,
		CheckFileName:  checkFileName,
		StrictTopLevel: strict,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	h.respond(c, result, format)
}

// ValidateObject handles POST /api/v1/reports/validate-object
// @Summary Validate a report stored in the configured bucket
// @Tags reports
// @Accept json
// @Produce json
// @Param body body ValidateObjectRequest true "Object key"
// @Param format query string false "csv or xlsx"
// @Success 200 {object} APIResponse{data=service.ValidationResult}
// @Failure 404 {object} APIResponse "Object not found"
// @Failure 503 {object} APIResponse "Storage not configured"
// @Router /reports/validate-object [post]
func (h *ValidationHandler) ValidateObject(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}

	var req ValidateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key is required")
		return
	}

	result, err := h.validationService.ValidateObject(c.Request.Context(), req.Key, req.CheckFileName)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.respond(c, result, format)
}

func (h *ValidationHandler) respond(c *gin.Context, result *service.ValidationResult, format export.Format) {
	if format == "" {
		RespondOK(c, result)
		return
	}

	filename := export.BuildFilename(result.Report.FileName, format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := format.Write(c.Writer, result.Report.Errors); err != nil {
		requestID, _ := c.Get(middleware.RequestIDKey)
		_ = c.Error(fmt.Errorf("[%s] writing %s export: %w", requestID, format, err))
	}
}

func (h *ValidationHandler) exportFormat(c *gin.Context) (export.Format, bool) {
	raw := c.Query("format")
	if raw == "" || raw == "json" {
		return "", true
	}
	format, ok := export.ParseFormat(raw)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be json, csv or xlsx")
		return "", false
	}
	return format, true
}

func optionalBool(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMETER", name+" must be a boolean")
		return nil, false
	}
	return &v, true
}
