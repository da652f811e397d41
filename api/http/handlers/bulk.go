package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/atslens/ats-engine/api/http/presenter"
	"github.com/atslens/ats-engine/pkg/analysis"
)

type BulkHandler struct {
	svc      analysis.UseCase
	maxBytes int64
}

func NewBulkHandler(svc analysis.UseCase, maxBytes int64) *BulkHandler {
	return &BulkHandler{svc: svc, maxBytes: maxBytes}
}

// BulkAnalyze scores several resumes against one job description and ranks
// the candidates.
// @Summary Analyze multiple resumes against one job description
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   resume_files formData file true "Resume files (repeat the field)"
// @Param   jd_text formData string true "Job description text"
// @Security BearerAuth
// @Success 200 {object} analysis.BulkResult
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /bulk-analyze [post]
func (h *BulkHandler) BulkAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid multipart form")
	}
	headers := form.File["resume_files"]
	if len(headers) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "no resume files provided")
	}
	jdText := c.FormValue("jd_text")
	if jdText == "" {
		return presenter.Error(c, http.StatusBadRequest, "no job description provided")
	}

	files := make([]analysis.NamedFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" {
			continue
		}
		data, err := readUpload(fh, h.maxBytes)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
			}
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		files = append(files, analysis.NamedFile{Filename: fh.Filename, Data: data})
	}

	result, err := h.svc.AnalyzeBulk(c.Context(), files, jdText)
	if err != nil {
		return analysisError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, result)
}
