// Package report renders a full analysis result as a plain-text report
// suitable for downloading.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/nlp"
)

const rule = "================================================================================"
const thinRule = "--------------------------------------------------------------------------------"

var reQuantified = regexp.MustCompile(`\d+%|\d+\+`)

// Filename returns a timestamped attachment name for a report download.
func Filename(now time.Time) string {
	return "ATS_Report_" + now.Format("20060102_150405") + ".txt"
}

// ResumeFilename returns a timestamped attachment name for an optimized
// resume download.
func ResumeFilename(now time.Time) string {
	return "Optimized_Resume_" + now.Format("20060102_150405") + ".txt"
}

// Render produces the downloadable report text from a completed analysis.
func Render(res analysis.Result, now time.Time) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add(rule)
	add("ATS RESUME SCORING & OPTIMIZATION REPORT")
	add(rule)
	add("Generated: %s\n", now.Format("2006-01-02 15:04:05"))

	add("ATS COMPATIBILITY SCORE: %d/100", res.Score.TotalScore)
	add(thinRule)

	add("\nSCORE BREAKDOWN:")
	for _, name := range breakdownOrder(res.Score.Breakdown) {
		entry := res.Score.Breakdown[name]
		add("  %s: %d/100 (Weight: %.2f)", titleCase(name), entry.Score, entry.Weight)
	}

	add("\n" + rule)
	add("GAP ANALYSIS")
	add(rule)
	add("\nCRITICAL GAPS:")
	addGapMap(add, res.Gaps.Critical)
	add("\nIMPORTANT GAPS:")
	addGapMap(add, res.Gaps.Important)

	add("\n" + rule)
	add("HR SUITABILITY ASSESSMENT")
	add(rule)
	add("VERDICT: %s", res.Suitability.Verdict)
	add("RISK LEVEL: %s", res.Suitability.RiskLevel)
	add("RECOMMENDATION: %s", res.Suitability.Recommendation)
	add("\nRECRUITER INSIGHTS:")
	for _, insight := range res.Suitability.RecruiterInsights {
		add("  • %s", insight)
	}

	add("\n" + rule)
	add("IMPROVEMENT RECOMMENDATIONS")
	add(rule)

	add("\nKEYWORD INSERTIONS:")
	for i, s := range res.Improvements.KeywordInsertions {
		if i == 5 {
			break
		}
		add("  [%s] %s", s.Priority, s.Keyword)
		add("    Location: %s", s.Location)
		add("    Suggestion: %s\n", s.Suggestion)
	}

	add("\nBULLET POINT REWRITES:")
	for i, rw := range res.Improvements.BulletPointRewrites {
		if i == 3 {
			break
		}
		add("  Original: %s", rw.Original)
		add("  Improved: %s", rw.Improved)
		add("  Reason: %s\n", rw.Reason)
	}

	add("\nFORMATTING FIXES:")
	for i, fix := range res.Improvements.FormattingFixes {
		if i == 5 {
			break
		}
		add("  • %s", fix)
	}

	add("\n" + rule)
	add("OPTIMIZED RESUME")
	add(rule)
	add("%s", res.OptimizedResume)

	add("\n" + rule)
	add("RECRUITER READABILITY RATING")
	add(rule)
	add("\nReadability Score: %d/10", readability(res.OptimizedResume))
	add("Factors: Clear structure, action verbs, quantified achievements, ATS-friendly format")

	return strings.Join(lines, "\n")
}

func addGapMap(add func(string, ...any), gaps map[string][]string) {
	for _, gapType := range sortedKeys(gaps) {
		items := gaps[gapType]
		if len(items) == 0 {
			continue
		}
		add("  %s:", titleCase(gapType))
		for i, item := range items {
			if i == 5 {
				break
			}
			add("    - %s", item)
		}
	}
}

// breakdownOrder keeps category output deterministic.
func breakdownOrder(breakdown map[string]analysis.CategoryScore) []string {
	preferred := []string{
		analysis.CategorySkills,
		analysis.CategoryKeywords,
		analysis.CategoryExperience,
		analysis.CategoryEducation,
		analysis.CategoryCertifications,
		analysis.CategoryFormatting,
	}
	var out []string
	for _, name := range preferred {
		if _, ok := breakdown[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// readability is a coarse 7..10 rating of the rendered resume.
func readability(text string) int {
	score := 7
	lower := strings.ToLower(text)
	for _, verb := range nlp.ActionVerbs {
		if strings.Contains(lower, verb) {
			score++
			break
		}
	}
	if reQuantified.MatchString(text) {
		score++
	}
	upper := strings.ToUpper(text)
	if strings.Contains(upper, "SUMMARY") && strings.Contains(upper, "EXPERIENCE") && strings.Contains(upper, "SKILLS") {
		score++
	}
	if score > 10 {
		score = 10
	}
	return score
}
