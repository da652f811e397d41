package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/optimizer"
)

var reportTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestFilename(t *testing.T) {
	assert.Equal(t, "ATS_Report_20240315_103000.txt", Filename(reportTime))
	assert.Equal(t, "Optimized_Resume_20240315_103000.txt", ResumeFilename(reportTime))
}

func TestRender(t *testing.T) {
	res := analysis.Result{
		Score: analysis.Score{
			TotalScore: 78,
			Breakdown: map[string]analysis.CategoryScore{
				analysis.CategorySkills:   {Score: 67, Weight: 0.35},
				analysis.CategoryKeywords: {Score: 80, Weight: 0.25},
			},
		},
		Suitability: analysis.Suitability{
			Verdict:           "Strong Match",
			RiskLevel:         "Low",
			Recommendation:    "Shortlist for interview.",
			RecruiterInsights: []string{"Technical Core: 2/3 mandatory skills found."},
		},
		Gaps: analysis.GapReport{
			Critical:  map[string][]string{"skills": {"AWS"}},
			Important: map[string][]string{"keywords": {"pipelines"}},
		},
		Improvements: optimizer.Improvements{
			KeywordInsertions: []optimizer.KeywordInsertion{{
				Keyword: "AWS", Location: "Skills section", Priority: "CRITICAL",
				Suggestion: "Add 'AWS' to your skills section if you have experience with it",
			}},
			BulletPointRewrites: []optimizer.BulletRewrite{{
				Original: "Responsible for ETL",
				Improved: "Developed Responsible for ETL, resulting in [quantifiable impact]",
				Reason:   "Start with strong action verb and quantify impact",
			}},
			FormattingFixes: []string{"Avoid headers/footers"},
		},
		OptimizedResume: "John Smith\n\nPROFESSIONAL SUMMARY\nEngineer.\n\nSKILLS\nCore: Python\n\nPROFESSIONAL EXPERIENCE\nAcme\n• Developed pipelines cutting costs by 30%\n",
	}

	out := Render(res, reportTime)

	assert.Contains(t, out, "ATS RESUME SCORING & OPTIMIZATION REPORT")
	assert.Contains(t, out, "Generated: 2024-03-15 10:30:00")
	assert.Contains(t, out, "ATS COMPATIBILITY SCORE: 78/100")
	assert.Contains(t, out, "  Skills: 67/100 (Weight: 0.35)")
	assert.Contains(t, out, "  Keywords: 80/100 (Weight: 0.25)")
	assert.Contains(t, out, "CRITICAL GAPS:")
	assert.Contains(t, out, "    - AWS")
	assert.Contains(t, out, "VERDICT: Strong Match")
	assert.Contains(t, out, "RISK LEVEL: Low")
	assert.Contains(t, out, "  [CRITICAL] AWS")
	assert.Contains(t, out, "  Original: Responsible for ETL")
	assert.Contains(t, out, "OPTIMIZED RESUME")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "Readability Score: 10/10")

	// Skills ordered before keywords regardless of map iteration.
	assert.Less(t, strings.Index(out, "Skills: 67"), strings.Index(out, "Keywords: 80"))
}

func TestRenderCapsGapItems(t *testing.T) {
	res := analysis.Result{
		Gaps: analysis.GapReport{
			Critical:  map[string][]string{"skills": {"a", "b", "c", "d", "e", "f", "g"}},
			Important: map[string][]string{},
		},
	}
	out := Render(res, reportTime)
	assert.Contains(t, out, "    - e")
	assert.NotContains(t, out, "    - f")
}

func TestReadability(t *testing.T) {
	assert.Equal(t, 7, readability("plain text with nothing"))
	assert.Equal(t, 10, readability("SUMMARY EXPERIENCE SKILLS\ndeveloped throughput by 30%"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Action Verbs", titleCase("action_verbs"))
	assert.Equal(t, "Skills", titleCase("skills"))
}
