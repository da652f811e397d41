package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atslens/ats-engine/pkg/shortlist"
)

// ShortlistRepository implements shortlist.Repository backed by PostgreSQL.
// Skill lists and notes are stored as JSONB; pgx handles the conversion for
// tagged struct slices.
type ShortlistRepository struct {
	pool *pgxpool.Pool
}

func NewShortlistRepository(pool *pgxpool.Pool) (*ShortlistRepository, error) {
	repo := &ShortlistRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ShortlistRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS shortlist (
			email TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			shortlisted_at TIMESTAMPTZ NOT NULL,
			candidate_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			total_score INT NOT NULL DEFAULT 0,
			verdict TEXT NOT NULL DEFAULT '',
			matched_skills JSONB NOT NULL DEFAULT '[]',
			missing_skills JSONB NOT NULL DEFAULT '[]',
			education_match BOOLEAN NOT NULL DEFAULT FALSE,
			matched_certifications JSONB NOT NULL DEFAULT '[]',
			job_title TEXT NOT NULL DEFAULT '',
			notes JSONB NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'shortlisted',
			status_updated_at TIMESTAMPTZ
		);
	`)
	return err
}

func (r *ShortlistRepository) Add(ctx context.Context, c shortlist.Candidate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shortlist (
			email, id, shortlisted_at, candidate_name, phone, total_score,
			verdict, matched_skills, missing_skills, education_match,
			matched_certifications, job_title, notes, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, c.Email, c.ID, c.ShortlistedAt, c.CandidateName, c.Phone, c.TotalScore,
		c.Verdict, asJSON(c.MatchedSkills), asJSON(c.MissingSkills), c.EducationMatch,
		asJSON(c.MatchedCertifications), c.JobTitle, asJSON(c.Notes), c.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shortlist.ErrAlreadyShortlisted
		}
		return err
	}
	return nil
}

func (r *ShortlistRepository) Remove(ctx context.Context, email string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shortlist WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shortlist.ErrNotFound
	}
	return nil
}

const candidateColumns = `
	email, id, shortlisted_at, candidate_name, phone, total_score,
	verdict, matched_skills, missing_skills, education_match,
	matched_certifications, job_title, notes, status, status_updated_at
`

func (r *ShortlistRepository) List(ctx context.Context) ([]shortlist.Candidate, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+candidateColumns+` FROM shortlist ORDER BY shortlisted_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []shortlist.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ShortlistRepository) GetByEmail(ctx context.Context, email string) (shortlist.Candidate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM shortlist WHERE email = $1`, email)
	c, err := scanCandidate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return shortlist.Candidate{}, shortlist.ErrNotFound
	}
	return c, err
}

func (r *ShortlistRepository) UpdateStatus(ctx context.Context, email, status string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shortlist SET status = $2, status_updated_at = $3 WHERE email = $1
	`, email, status, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shortlist.ErrNotFound
	}
	return nil
}

func (r *ShortlistRepository) AddNote(ctx context.Context, email string, note shortlist.Note) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shortlist SET notes = notes || $2::jsonb WHERE email = $1
	`, email, asJSON([]shortlist.Note{note}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shortlist.ErrNotFound
	}
	return nil
}

func scanCandidate(row pgx.Row) (shortlist.Candidate, error) {
	var c shortlist.Candidate
	var shortlistedAt time.Time
	var statusUpdatedAt *time.Time
	var matched, missing, certs, notes []byte
	err := row.Scan(
		&c.Email, &c.ID, &shortlistedAt, &c.CandidateName, &c.Phone, &c.TotalScore,
		&c.Verdict, &matched, &missing, &c.EducationMatch,
		&certs, &c.JobTitle, &notes, &c.Status, &statusUpdatedAt,
	)
	if err != nil {
		return shortlist.Candidate{}, err
	}
	c.ShortlistedAt = shortlistedAt.UTC()
	if statusUpdatedAt != nil {
		utc := statusUpdatedAt.UTC()
		c.StatusUpdatedAt = &utc
	}
	for _, pair := range []struct {
		raw []byte
		dst any
	}{
		{matched, &c.MatchedSkills},
		{missing, &c.MissingSkills},
		{certs, &c.MatchedCertifications},
		{notes, &c.Notes},
	} {
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return shortlist.Candidate{}, err
		}
	}
	return c, nil
}

// asJSON forces JSONB encoding for slice parameters, which pgx would
// otherwise send as postgres arrays.
func asJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" {
		return []byte("[]")
	}
	return data
}
