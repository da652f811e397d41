package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atslens/ats-engine/api/http/presenter"
	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/report"
)

// ExportHandler serves report and optimized resume downloads as plain-text
// attachments.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler { return &ExportHandler{} }

// DownloadReport renders a completed analysis as a downloadable report.
// @Summary Download the full analysis report
// @Tags    export
// @Accept  json
// @Produce text/plain
// @Param   input body analysis.Result true "analysis result as returned by /analyze"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /download-report [post]
func (h *ExportHandler) DownloadReport(c *fiber.Ctx) error {
	var res analysis.Result
	if err := c.BodyParser(&res); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	now := time.Now().UTC()
	return sendAttachment(c, report.Filename(now), report.Render(res, now))
}

type downloadResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

// DownloadResume returns the optimized resume text as an attachment.
// @Summary Download the optimized resume
// @Tags    export
// @Accept  json
// @Produce text/plain
// @Param   input body downloadResumeRequest true "optimized resume text"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /download-resume [post]
func (h *ExportHandler) DownloadResume(c *fiber.Ctx) error {
	var req downloadResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, "no resume text provided")
	}
	return sendAttachment(c, report.ResumeFilename(time.Now().UTC()), req.ResumeText)
}

func sendAttachment(c *fiber.Ctx, filename, body string) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(http.StatusOK).SendString(body)
}
