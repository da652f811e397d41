package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/resume"
)

const usecaseResume = `John Smith
john.smith@example.com
+1 555 123 4567

SUMMARY
Backend engineer with seven years building data platforms.

SKILLS
Python, SQL, AWS, Docker

EXPERIENCE
Acme Corp - Backend Engineer, 2019-2023
- Built data pipelines in Python serving analytics dashboards
- Designed SQL schemas for the billing warehouse

EDUCATION
Bachelor of Science in Computer Science, State University
`

const usecaseJD = `Senior Python Developer

Required Skills:
- Python
- SQL

Preferred Skills:
- Docker

Experience: 3+ years of experience
`

func newService(t *testing.T) analysis.UseCase {
	t.Helper()
	return analysis.NewService(10*time.Second, zerolog.Nop())
}

func TestAnalyzeEndToEnd(t *testing.T) {
	svc := newService(t)
	res, err := svc.Analyze(context.Background(), "resume.txt", []byte(usecaseResume), usecaseJD)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "John Smith", res.ResumeData.ContactInfo.Name)
	assert.Empty(t, res.Score.Visibility.MissingMandatory)
	assert.Greater(t, res.Score.TotalScore, 50)
	assert.NotEmpty(t, res.Suitability.Verdict)
	assert.NotEmpty(t, res.OptimizedResume)
	assert.Len(t, res.Score.Breakdown, 6)
}

func TestAnalyzeEmptyJD(t *testing.T) {
	svc := newService(t)
	_, err := svc.Analyze(context.Background(), "resume.txt", []byte(usecaseResume), "   ")
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAnalyzeEmptyFile(t *testing.T) {
	svc := newService(t)
	_, err := svc.Analyze(context.Background(), "resume.txt", nil, usecaseJD)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	svc := newService(t)
	_, err := svc.Analyze(context.Background(), "resume.png", []byte("binary"), usecaseJD)
	assert.ErrorIs(t, err, resume.ErrUnsupportedFormat)
}

func TestAnalyzeDeadline(t *testing.T) {
	svc := analysis.NewService(time.Nanosecond, zerolog.Nop())
	_, err := svc.Analyze(context.Background(), "resume.txt", []byte(usecaseResume), usecaseJD)
	if err != nil {
		assert.ErrorIs(t, err, analysis.ErrTimeout)
	}
}

func TestAnalyzeBulkRanksByScore(t *testing.T) {
	svc := newService(t)
	weak := `Jane Doe
jane@example.com

SKILLS
Photoshop

EXPERIENCE
Studio - Designer, 2020-2023
- Produced marketing assets
`
	files := []analysis.NamedFile{
		{Filename: "weak.txt", Data: []byte(weak)},
		{Filename: "strong.txt", Data: []byte(usecaseResume)},
		{Filename: "broken.exe", Data: []byte("nope")},
	}

	out, err := svc.AnalyzeBulk(context.Background(), files, usecaseJD)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 3, out.TotalProcessed)
	assert.Equal(t, 2, out.Successful)
	assert.Equal(t, 1, out.Failed)

	require.Len(t, out.Candidates, 2)
	assert.Equal(t, 1, out.Candidates[0].Rank)
	assert.Equal(t, "strong.txt", out.Candidates[0].Filename)
	assert.Equal(t, 2, out.Candidates[1].Rank)
	assert.Greater(t, out.Candidates[0].TotalScore, out.Candidates[1].TotalScore)

	require.Len(t, out.FailedFiles, 1)
	assert.Equal(t, "broken.exe", out.FailedFiles[0].Filename)

	assert.Contains(t, out.JDData.MandatorySkills, "python")
}

func TestAnalyzeBulkNoFiles(t *testing.T) {
	svc := newService(t)
	_, err := svc.AnalyzeBulk(context.Background(), nil, usecaseJD)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}
