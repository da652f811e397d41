// Package shortlist manages the recruiter shortlist of candidates.
package shortlist

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAlreadyShortlisted = errors.New("candidate already shortlisted")
	ErrNotFound           = errors.New("candidate not found in shortlist")
)

// Statuses a candidate moves through after shortlisting.
const (
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusOffered     = "offered"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
)

// Note is a dated recruiter remark on a candidate.
type Note struct {
	Text    string    `json:"text"`
	AddedAt time.Time `json:"added_at"`
}

// Candidate is one shortlist entry, keyed by email.
type Candidate struct {
	ID                    string     `json:"id"`
	ShortlistedAt         time.Time  `json:"shortlisted_at"`
	CandidateName         string     `json:"candidate_name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	TotalScore            int        `json:"total_score"`
	Verdict               string     `json:"verdict"`
	MatchedSkills         []string   `json:"matched_skills"`
	MissingSkills         []string   `json:"missing_skills"`
	EducationMatch        bool       `json:"education_match"`
	MatchedCertifications []string   `json:"matched_certifications"`
	JobTitle              string     `json:"job_title"`
	Notes                 []Note     `json:"notes"`
	Status                string     `json:"status"`
	StatusUpdatedAt       *time.Time `json:"status_updated_at,omitempty"`
}

// Statistics summarizes the whole shortlist.
type Statistics struct {
	TotalShortlisted int            `json:"total_shortlisted"`
	StatusBreakdown  map[string]int `json:"status_breakdown"`
	AverageScore     float64        `json:"average_score"`
}

// Repository persists shortlist entries. Implementations: postgres and a
// JSON file fallback.
type Repository interface {
	Add(ctx context.Context, c Candidate) error
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]Candidate, error)
	GetByEmail(ctx context.Context, email string) (Candidate, error)
	UpdateStatus(ctx context.Context, email, status string, at time.Time) error
	AddNote(ctx context.Context, email string, note Note) error
}
