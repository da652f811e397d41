package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/atslens/ats-engine/api/http/presenter"
	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/resume"
)

var errFileTooLarge = errors.New("file too large")

type AnalyzeHandler struct {
	svc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalyzeHandler(svc analysis.UseCase, maxBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, maxBytes: maxBytes}
}

// Analyze scores an uploaded resume against a job description.
// @Summary Analyze a resume against a job description
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   resume_file formData file true "Resume file (PDF, DOCX or TXT)"
// @Param   jd_text formData string true "Job description text"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 415 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 504 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume_file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no resume file provided")
	}
	jdText := c.FormValue("jd_text")
	if jdText == "" {
		return presenter.Error(c, http.StatusBadRequest, "no job description provided")
	}

	data, err := readUpload(fh, h.maxBytes)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Analyze(c.Context(), fh.Filename, data, jdText)
	if err != nil {
		return analysisError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// analysisError maps pipeline errors onto HTTP statuses.
func analysisError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return presenter.Error(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, resume.ErrExtraction):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, analysis.ErrTimeout):
		return presenter.Error(c, http.StatusGatewayTimeout, err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "analysis failed")
	}
}

func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file")
	}
	defer file.Close()

	limited := io.LimitReader(file, maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", errFileTooLarge, maxBytes)
	}
	return data, nil
}
