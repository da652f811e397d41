package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/resume"
)

func TestAnalyzeGapsCriticalBuckets(t *testing.T) {
	match := MatchResult{
		Skills:          CategoryMatch{Missing: []string{"AWS"}},
		PreferredSkills: CategoryMatch{Missing: []string{"Docker"}},
		Certifications:  CategoryMatch{Missing: []string{"PMP"}},
		EducationMatch:  false,
	}
	req := jd.Requirements{EducationRequired: "Master"}

	report := AnalyzeGaps(resume.Document{}, req, match)
	assert.Equal(t, []string{"AWS"}, report.Critical[CategorySkills])
	assert.Equal(t, []string{"PMP"}, report.Critical[CategoryCertifications])
	assert.Equal(t, []string{"Master"}, report.Critical[CategoryEducation])
	assert.Equal(t, []string{"Docker"}, report.Important[CategorySkills])
}

func TestAnalyzeGapsEducationMatchedIsEmpty(t *testing.T) {
	report := AnalyzeGaps(resume.Document{}, jd.Requirements{}, MatchResult{EducationMatch: true})
	assert.Empty(t, report.Critical[CategoryEducation])
	assert.NotNil(t, report.FormattingIssues)
}

func TestMissingKeywordsCapped(t *testing.T) {
	req := jd.Requirements{DomainKeywords: []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}}
	missing := missingKeywords(resume.Document{Keywords: []string{"alpha"}}, req)
	assert.Len(t, missing, 10)
	assert.NotContains(t, missing, "alpha")
}

func TestWeakActionVerbs(t *testing.T) {
	doc := resume.Document{Experience: []resume.Experience{{
		Header: "Acme Corp - Engineer",
		Bullets: []string{
			"Responsible for nightly ETL jobs",
			"Built a reporting pipeline with Python",
			"Helped with production deployments",
		},
	}}}

	found := weakActionVerbs(doc)
	assert.Len(t, found, 2)
	assert.Contains(t, found[0], `"responsible for"`)
	assert.Contains(t, found[1], `"helped with"`)
}

func TestWeakActionVerbsCapAtFive(t *testing.T) {
	bullets := make([]string, 8)
	for i := range bullets {
		bullets[i] = "Worked on internal tooling"
	}
	doc := resume.Document{Experience: []resume.Experience{{Header: "X", Bullets: bullets}}}
	assert.Len(t, weakActionVerbs(doc), 5)
}
