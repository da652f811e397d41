package shortlist

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// UseCase covers shortlist management operations.
type UseCase interface {
	Add(ctx context.Context, c Candidate) (Candidate, bool, error)
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]Candidate, error)
	Check(ctx context.Context, email string) (Candidate, bool, error)
	UpdateStatus(ctx context.Context, email, status string) error
	AddNote(ctx context.Context, email, note string) error
	Statistics(ctx context.Context) (Statistics, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	log      zerolog.Logger
}

func NewService(repo Repository, notifier Notifier, log zerolog.Logger) UseCase {
	return &service{repo: repo, notifier: notifier, log: log}
}

// Add shortlists a candidate and notifies them by email. The bool result
// reports whether the notification was sent; a notification failure never
// fails the shortlisting itself.
func (s *service) Add(ctx context.Context, c Candidate) (Candidate, bool, error) {
	now := time.Now().UTC()
	c.ID = "SL-" + now.Format("20060102150405")
	c.ShortlistedAt = now
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Status = StatusShortlisted
	if c.CandidateName == "" {
		c.CandidateName = "Unknown"
	}
	if c.JobTitle == "" {
		c.JobTitle = "Not specified"
	}
	if c.Notes == nil {
		c.Notes = []Note{}
	}

	if err := s.repo.Add(ctx, c); err != nil {
		return Candidate{}, false, err
	}

	notified := false
	if c.Email != "" && s.notifier != nil {
		if err := s.notifier.CandidateShortlisted(ctx, c); err != nil {
			s.log.Warn().Str("email", c.Email).Err(err).Msg("shortlist notification failed")
		} else {
			notified = true
		}
	}

	s.log.Info().Str("email", c.Email).Int("total_score", c.TotalScore).Msg("candidate shortlisted")
	return c, notified, nil
}

func (s *service) Remove(ctx context.Context, email string) error {
	return s.repo.Remove(ctx, normalizeEmail(email))
}

func (s *service) List(ctx context.Context) ([]Candidate, error) {
	return s.repo.List(ctx)
}

func (s *service) Check(ctx context.Context, email string) (Candidate, bool, error) {
	c, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err == ErrNotFound {
		return Candidate{}, false, nil
	}
	if err != nil {
		return Candidate{}, false, err
	}
	return c, true, nil
}

func (s *service) UpdateStatus(ctx context.Context, email, status string) error {
	return s.repo.UpdateStatus(ctx, normalizeEmail(email), status, time.Now().UTC())
}

func (s *service) AddNote(ctx context.Context, email, note string) error {
	return s.repo.AddNote(ctx, normalizeEmail(email), Note{Text: note, AddedAt: time.Now().UTC()})
}

func (s *service) Statistics(ctx context.Context) (Statistics, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	stats := Statistics{
		TotalShortlisted: len(all),
		StatusBreakdown:  map[string]int{},
	}
	sum := 0
	for _, c := range all {
		status := c.Status
		if status == "" {
			status = "unknown"
		}
		stats.StatusBreakdown[status]++
		sum += c.TotalScore
	}
	if len(all) > 0 {
		stats.AverageScore = float64(sum) / float64(len(all))
	}
	return stats, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
