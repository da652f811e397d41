package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atslens/ats-engine/api/http/presenter"
	"github.com/atslens/ats-engine/pkg/shortlist"
)

type ShortlistHandler struct {
	svc shortlist.UseCase
}

func NewShortlistHandler(svc shortlist.UseCase) *ShortlistHandler {
	return &ShortlistHandler{svc: svc}
}

type addCandidateRequest struct {
	CandidateName         string   `json:"candidate_name"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone"`
	TotalScore            int      `json:"total_score"`
	Verdict               string   `json:"verdict"`
	MatchedSkills         []string `json:"matched_skills"`
	MissingSkills         []string `json:"missing_skills"`
	EducationMatch        bool     `json:"education_match"`
	MatchedCertifications []string `json:"matched_certifications"`
	JobTitle              string   `json:"job_title"`
}

// Add shortlists a candidate and triggers the notification email.
// @Summary Add a candidate to the shortlist
// @Tags    shortlist
// @Accept  json
// @Produce json
// @Param   input body addCandidateRequest true "candidate data"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /shortlist/add [post]
func (h *ShortlistHandler) Add(c *fiber.Ctx) error {
	var req addCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" {
		return presenter.Error(c, http.StatusBadRequest, "candidate email is required")
	}

	entry, notified, err := h.svc.Add(c.Context(), shortlist.Candidate{
		CandidateName:         req.CandidateName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		TotalScore:            req.TotalScore,
		Verdict:               req.Verdict,
		MatchedSkills:         req.MatchedSkills,
		MissingSkills:         req.MissingSkills,
		EducationMatch:        req.EducationMatch,
		MatchedCertifications: req.MatchedCertifications,
		JobTitle:              req.JobTitle,
	})
	if err != nil {
		if errors.Is(err, shortlist.ErrAlreadyShortlisted) {
			return presenter.Error(c, http.StatusConflict, "candidate already shortlisted")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to shortlist candidate")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success":    true,
		"message":    "Candidate shortlisted successfully",
		"entry":      entry,
		"email_sent": notified,
	})
}

type emailRequest struct {
	Email string `json:"email"`
}

// Remove deletes a candidate from the shortlist.
// @Summary Remove a candidate from the shortlist
// @Tags    shortlist
// @Accept  json
// @Produce json
// @Param   input body emailRequest true "candidate email"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /shortlist/remove [post]
func (h *ShortlistHandler) Remove(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.svc.Remove(c.Context(), req.Email); err != nil {
		if errors.Is(err, shortlist.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found in shortlist")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to remove candidate")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Candidate removed from shortlist",
	})
}

// List returns all shortlisted candidates.
// @Summary List shortlisted candidates
// @Tags    shortlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /shortlist [get]
func (h *ShortlistHandler) List(c *fiber.Ctx) error {
	candidates, err := h.svc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load shortlist")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":    true,
		"count":      len(candidates),
		"candidates": candidates,
	})
}

// Check reports whether an email is shortlisted.
// @Summary Check shortlist membership
// @Tags    shortlist
// @Produce json
// @Param   email path string true "candidate email"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /shortlist/check/{email} [get]
func (h *ShortlistHandler) Check(c *fiber.Ctx) error {
	email, err := decodeEmailParam(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid email parameter")
	}
	candidate, found, err := h.svc.Check(c.Context(), email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to check shortlist")
	}
	resp := fiber.Map{"success": true, "is_shortlisted": found}
	if found {
		resp["candidate"] = candidate
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

type statusRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// UpdateStatus moves a shortlisted candidate to a new pipeline status.
// @Summary Update candidate status
// @Tags    shortlist
// @Accept  json
// @Produce json
// @Param   input body statusRequest true "email and new status"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /shortlist/status [post]
func (h *ShortlistHandler) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Email == "" || req.Status == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and status are required")
	}
	if err := h.svc.UpdateStatus(c.Context(), req.Email, req.Status); err != nil {
		if errors.Is(err, shortlist.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found in shortlist")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update status")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Status updated to " + req.Status,
	})
}

type noteRequest struct {
	Email string `json:"email"`
	Note  string `json:"note"`
}

// AddNote attaches a recruiter note to a shortlisted candidate.
// @Summary Add a note to a candidate
// @Tags    shortlist
// @Accept  json
// @Produce json
// @Param   input body noteRequest true "email and note text"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /shortlist/note [post]
func (h *ShortlistHandler) AddNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Email == "" || strings.TrimSpace(req.Note) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and note are required")
	}
	if err := h.svc.AddNote(c.Context(), req.Email, req.Note); err != nil {
		if errors.Is(err, shortlist.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found in shortlist")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to add note")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Note added successfully",
	})
}

// Statistics summarizes the shortlist.
// @Summary Shortlist statistics
// @Tags    shortlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shortlist.Statistics
// @Router  /shortlist/statistics [get]
func (h *ShortlistHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.svc.Statistics(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to compute statistics")
	}
	return presenter.JSON(c, http.StatusOK, stats)
}

func decodeEmailParam(c *fiber.Ctx) (string, error) {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(email) == "" {
		return "", errors.New("empty email")
	}
	return email, nil
}
