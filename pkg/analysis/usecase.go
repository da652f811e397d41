package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/optimizer"
	"github.com/atslens/ats-engine/pkg/resume"
)

// UseCase runs the full analysis pipeline for one or many resumes.
type UseCase interface {
	Analyze(ctx context.Context, filename string, data []byte, jdText string) (Result, error)
	AnalyzeBulk(ctx context.Context, files []NamedFile, jdText string) (BulkResult, error)
}

// NamedFile is one uploaded resume in a bulk request.
type NamedFile struct {
	Filename string
	Data     []byte
}

// CandidateSummary is one ranked entry of a bulk analysis.
type CandidateSummary struct {
	Rank                  int                      `json:"rank"`
	Filename              string                   `json:"filename"`
	CandidateName         string                   `json:"candidate_name"`
	Email                 string                   `json:"email"`
	Phone                 string                   `json:"phone"`
	TotalScore            int                      `json:"total_score"`
	Verdict               string                   `json:"verdict"`
	VerdictColor          string                   `json:"verdict_color"`
	Recommendation        string                   `json:"recommendation"`
	Visibility            Visibility               `json:"visibility_status"`
	MatchedSkills         []string                 `json:"matched_skills"`
	MissingSkills         []string                 `json:"missing_skills"`
	EducationMatch        bool                     `json:"education_match"`
	EducationRequired     string                   `json:"education_required"`
	ResumeEducation       []string                 `json:"resume_education"`
	MatchedCertifications []string                 `json:"matched_certifications"`
	MissingCertifications []string                 `json:"missing_certifications"`
	ExperienceSummary     []string                 `json:"experience_summary"`
	Breakdown             map[string]CategoryScore `json:"breakdown"`
}

// FailedFile records why one resume of a batch was skipped.
type FailedFile struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BulkJD is the JD echo of a bulk response, trimmed to ranking-relevant fields.
type BulkJD struct {
	MandatorySkills        []string `json:"mandatory_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	ExperienceRequired     string   `json:"experience_required"`
	RequiredCertifications []string `json:"required_certifications"`
	EducationRequired      string   `json:"education_required"`
}

// BulkResult ranks all successfully analyzed candidates by total score.
type BulkResult struct {
	Success        bool               `json:"success"`
	TotalProcessed int                `json:"total_processed"`
	Successful     int                `json:"successful"`
	Failed         int                `json:"failed"`
	JDData         BulkJD             `json:"jd_data"`
	Candidates     []CandidateSummary `json:"candidates"`
	FailedFiles    []FailedFile       `json:"failed_files"`
}

type service struct {
	timeout time.Duration
	log     zerolog.Logger
}

func NewService(timeout time.Duration, log zerolog.Logger) UseCase {
	return &service{timeout: timeout, log: log}
}

// Analyze runs extraction and JD parsing concurrently, then the deterministic
// match/score/gap/suitability/optimize chain. The whole pipeline runs under
// the configured deadline.
func (s *service) Analyze(ctx context.Context, filename string, data []byte, jdText string) (Result, error) {
	if len(data) == 0 {
		return Result{}, fmt.Errorf("%w: empty resume file", ErrInvalidInput)
	}
	if strings.TrimSpace(jdText) == "" {
		return Result{}, fmt.Errorf("%w: job description cannot be empty", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()

	var doc resume.Document
	var req jd.Requirements

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := resume.ExtractText(filename, data)
		if err != nil {
			return err
		}
		doc = resume.Parse(text)
		return contextErr(gctx)
	})
	g.Go(func() error {
		var err error
		req, err = jd.Parse(jdText)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return contextErr(gctx)
	})
	if err := g.Wait(); err != nil {
		return Result{}, s.mapErr(err, ctx)
	}

	result := s.assemble(doc, req)

	s.log.Info().
		Str("filename", filename).
		Int("total_score", result.Score.TotalScore).
		Str("verdict", result.Suitability.Verdict).
		Dur("elapsed", time.Since(started)).
		Msg("analysis complete")

	if err := contextErr(ctx); err != nil {
		return Result{}, s.mapErr(err, ctx)
	}
	return result, nil
}

// AnalyzeBulk parses the JD once, then analyzes every file. A failing file is
// recorded, never fatal to the batch.
func (s *service) AnalyzeBulk(ctx context.Context, files []NamedFile, jdText string) (BulkResult, error) {
	if len(files) == 0 {
		return BulkResult{}, fmt.Errorf("%w: no resume files provided", ErrInvalidInput)
	}
	if strings.TrimSpace(jdText) == "" {
		return BulkResult{}, fmt.Errorf("%w: job description cannot be empty", ErrInvalidInput)
	}

	req, err := jd.Parse(jdText)
	if err != nil {
		return BulkResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout*time.Duration(len(files)))
	defer cancel()

	out := BulkResult{
		Success:        true,
		TotalProcessed: len(files),
		JDData: BulkJD{
			MandatorySkills:        req.MandatorySkills,
			PreferredSkills:        req.PreferredSkills,
			ExperienceRequired:     req.ExperienceRequired,
			RequiredCertifications: req.RequiredCertifications,
			EducationRequired:      req.EducationRequired,
		},
		Candidates:  []CandidateSummary{},
		FailedFiles: []FailedFile{},
	}

	for _, f := range files {
		if err := contextErr(ctx); err != nil {
			return BulkResult{}, s.mapErr(err, ctx)
		}
		cand, err := s.analyzeOne(f, req)
		if err != nil {
			s.log.Warn().Str("filename", f.Filename).Err(err).Msg("bulk candidate failed")
			out.FailedFiles = append(out.FailedFiles, FailedFile{Filename: f.Filename, Error: err.Error()})
			continue
		}
		out.Candidates = append(out.Candidates, cand)
	}

	sort.SliceStable(out.Candidates, func(i, j int) bool {
		return out.Candidates[i].TotalScore > out.Candidates[j].TotalScore
	})
	for i := range out.Candidates {
		out.Candidates[i].Rank = i + 1
	}
	out.Successful = len(out.Candidates)
	out.Failed = len(out.FailedFiles)
	return out, nil
}

func (s *service) analyzeOne(f NamedFile, req jd.Requirements) (CandidateSummary, error) {
	if len(f.Data) == 0 {
		return CandidateSummary{}, errors.New("empty file")
	}
	text, err := resume.ExtractText(f.Filename, f.Data)
	if err != nil {
		return CandidateSummary{}, err
	}
	doc := resume.Parse(text)
	match := Match(doc, req)
	score := ComputeScore(doc, req, match)
	suit := AssessSuitability(score, doc, req, match)

	return CandidateSummary{
		Filename:              f.Filename,
		CandidateName:         doc.ContactInfo.Name,
		Email:                 doc.ContactInfo.Email,
		Phone:                 doc.ContactInfo.Phone,
		TotalScore:            score.TotalScore,
		Verdict:               suit.Verdict,
		VerdictColor:          suit.Color,
		Recommendation:        suit.Recommendation,
		Visibility:            score.Visibility,
		MatchedSkills:         suit.MatchedSkills,
		MissingSkills:         suit.MissingSkills,
		EducationMatch:        suit.EducationMatch,
		EducationRequired:     suit.EducationRequired,
		ResumeEducation:       suit.ResumeEducation,
		MatchedCertifications: suit.MatchedCertifications,
		MissingCertifications: suit.MissingCertifications,
		ExperienceSummary:     suit.ExperienceSummary,
		Breakdown:             score.Breakdown,
	}, nil
}

func (s *service) assemble(doc resume.Document, req jd.Requirements) Result {
	match := Match(doc, req)
	score := ComputeScore(doc, req, match)
	gaps := AnalyzeGaps(doc, req, match)
	suit := AssessSuitability(score, doc, req, match)
	opt := optimizer.Optimize(doc, req, gaps.Critical[CategorySkills], gaps.Important[CategoryKeywords])

	return Result{
		Success:         true,
		Timestamp:       time.Now().UTC(),
		Score:           score,
		Suitability:     suit,
		Gaps:            gaps,
		ResumeData:      doc,
		JDData:          req,
		Improvements:    opt.Improvements,
		OptimizedResume: opt.OptimizedResume,
	}
}

// mapErr turns a deadline expiry into ErrTimeout; other errors pass through.
func (s *service) mapErr(err error, ctx context.Context) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: analysis exceeded the time limit", ErrTimeout)
	}
	return err
}

func contextErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
