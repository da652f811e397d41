// Package optimizer generates an improved resume draft plus itemized
// suggestions from a gap analysis. It only rearranges and rephrases content
// already present in the source document: no skill, employer, date or
// credential is ever invented.
package optimizer

import (
	"sort"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

// KeywordInsertion proposes adding one missing keyword at a target location.
type KeywordInsertion struct {
	Keyword    string `json:"keyword"`
	Location   string `json:"location"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}

// BulletRewrite proposes replacing a weak bullet with a stronger phrasing.
type BulletRewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// SkillsSection reorders the candidate's actual skills by JD relevance.
// Missing skills are reference-only and never merged into the resume.
type SkillsSection struct {
	Core                []string `json:"core"`
	Additional          []string `json:"additional"`
	Other               []string `json:"other"`
	MissingForReference []string `json:"missing_for_reference"`
	Note                string   `json:"note"`
}

// Improvements is the itemized suggestion set returned alongside the rewritten
// resume.
type Improvements struct {
	KeywordInsertions   []KeywordInsertion `json:"keyword_insertions"`
	BulletPointRewrites []BulletRewrite    `json:"bullet_point_rewrites"`
	SkillsSection       SkillsSection      `json:"skills_section"`
	SummaryOptimization string             `json:"summary_optimization"`
	TitleAlignment      []string           `json:"title_alignment"`
	FormattingFixes     []string           `json:"formatting_fixes"`
}

// Result couples the suggestions with the fully rendered optimized resume.
type Result struct {
	Improvements    Improvements
	OptimizedResume string
}

// Optimize derives improvement suggestions and renders the optimized resume.
// missingCritical and missingImportant come from the gap report.
func Optimize(doc resume.Document, req jd.Requirements, missingCritical, missingImportant []string) Result {
	imp := Improvements{
		KeywordInsertions:   suggestKeywordInsertions(missingCritical, missingImportant),
		BulletPointRewrites: suggestBulletRewrites(doc, req),
		SkillsSection:       restructureSkills(doc, req),
		SummaryOptimization: optimizeSummary(doc, req),
		TitleAlignment:      suggestTitleAlignment(req),
		FormattingFixes:     suggestFormattingFixes(doc),
	}
	return Result{
		Improvements:    imp,
		OptimizedResume: render(doc, imp),
	}
}

func suggestKeywordInsertions(critical, important []string) []KeywordInsertion {
	out := []KeywordInsertion{}
	for _, skill := range capSlice(critical, 5) {
		out = append(out, KeywordInsertion{
			Keyword:    skill,
			Location:   "Skills section",
			Priority:   "CRITICAL",
			Suggestion: "Add '" + skill + "' to your skills section if you have experience with it",
		})
	}
	for _, kw := range capSlice(important, 5) {
		out = append(out, KeywordInsertion{
			Keyword:    kw,
			Location:   "Experience bullets or Summary",
			Priority:   "IMPORTANT",
			Suggestion: "Incorporate '" + kw + "' in relevant experience descriptions",
		})
	}
	return out
}

// suggestBulletRewrites targets bullets in the two most recent jobs that do
// not open with an action verb.
func suggestBulletRewrites(doc resume.Document, req jd.Requirements) []BulletRewrite {
	verb := pickActionVerb(req)
	out := []BulletRewrite{}
	for _, exp := range capExperience(doc.Experience, 2) {
		for _, bullet := range capSlice(exp.Bullets, 3) {
			if startsWithActionVerb(bullet) {
				continue
			}
			out = append(out, BulletRewrite{
				Original: bullet,
				Improved: capitalize(verb) + " " + strings.TrimSpace(bullet) + ", resulting in [quantifiable impact]",
				Reason:   "Start with strong action verb and quantify impact",
			})
			if len(out) == 5 {
				return out
			}
		}
	}
	return out
}

func startsWithActionVerb(bullet string) bool {
	lower := nlp.Fold(strings.TrimSpace(bullet))
	for _, v := range nlp.ActionVerbs {
		if strings.HasPrefix(lower, v) {
			return true
		}
	}
	return false
}

// pickActionVerb prefers a verb the JD itself uses, "developed" otherwise.
func pickActionVerb(req jd.Requirements) string {
	if len(req.ActionVerbs) > 0 {
		verbs := append([]string(nil), req.ActionVerbs...)
		sort.Strings(verbs)
		return verbs[0]
	}
	return "developed"
}

func restructureSkills(doc resume.Document, req jd.Requirements) SkillsSection {
	have := mapset.NewThreadUnsafeSet[string]()
	for _, s := range doc.Skills {
		have.Add(nlp.Canonical(s))
	}
	mandatory := canonSet(req.MandatorySkills)
	preferred := canonSet(req.PreferredSkills)

	section := SkillsSection{
		Core:                []string{},
		Additional:          []string{},
		Other:               []string{},
		MissingForReference: []string{},
		Note:                "Skills are reorganized to highlight JD-relevant competencies. Missing skills are listed separately for review and are not added to the resume.",
	}
	for _, s := range doc.Skills {
		canon := nlp.Canonical(s)
		switch {
		case mandatory.Contains(canon):
			section.Core = append(section.Core, s)
		case preferred.Contains(canon):
			section.Additional = append(section.Additional, s)
		default:
			section.Other = append(section.Other, s)
		}
	}
	section.Other = capSlice(section.Other, 10)
	for _, s := range req.MandatorySkills {
		if !have.Contains(nlp.Canonical(s)) {
			section.MissingForReference = append(section.MissingForReference, s)
		}
	}
	for _, s := range req.PreferredSkills {
		if !have.Contains(nlp.Canonical(s)) {
			section.MissingForReference = append(section.MissingForReference, s)
		}
	}
	sort.Strings(section.MissingForReference)
	return section
}

// optimizeSummary keeps a summary that already names the top JD skills the
// candidate has; otherwise it appends the matched ones. Skills the candidate
// does not hold are never claimed.
func optimizeSummary(doc resume.Document, req jd.Requirements) string {
	summary := strings.TrimSpace(doc.Summary)
	have := mapset.NewThreadUnsafeSet[string]()
	for _, s := range doc.Skills {
		have.Add(nlp.Canonical(s))
	}

	var heldTop []string
	for _, s := range capSlice(req.MandatorySkills, 3) {
		if have.Contains(nlp.Canonical(s)) {
			heldTop = append(heldTop, s)
		}
	}

	if summary == "" {
		if len(heldTop) == 0 {
			return ""
		}
		return "Professional with hands-on experience in " + joinTitled(heldTop) + "."
	}

	lowerSummary := nlp.Fold(summary)
	var unmentioned []string
	for _, s := range heldTop {
		if !strings.Contains(lowerSummary, nlp.Fold(s)) {
			unmentioned = append(unmentioned, s)
		}
	}
	if len(unmentioned) == 0 {
		return summary
	}
	return strings.TrimRight(summary, ".") + ". Proficient in " + joinTitled(capSlice(unmentioned, 2)) + "."
}

var roleKeywords = []string{"engineer", "developer", "analyst", "manager", "architect", "lead", "senior"}

func suggestTitleAlignment(req jd.Requirements) []string {
	jdText := nlp.Fold(strings.Join(req.Responsibilities, " "))
	var found []string
	for _, role := range roleKeywords {
		if strings.Contains(jdText, role) {
			found = append(found, role)
		}
	}
	if len(found) == 0 {
		return []string{}
	}
	return []string{"Consider aligning your title to include: " + strings.Join(found, ", ")}
}

var standingFixes = []string{
	"Use standard section headings (Summary, Experience, Education, Skills)",
	"Use simple bullet points (• or -)",
	"Avoid headers/footers",
	"Use standard fonts (Arial, Calibri, Times New Roman)",
	"Save as .docx or PDF (text-based, not image)",
}

func suggestFormattingFixes(doc resume.Document) []string {
	fixes := []string{}
	for _, issue := range doc.FormattingIssues {
		lower := strings.ToLower(issue)
		switch {
		case strings.Contains(lower, "table"):
			fixes = append(fixes, "Remove tables - use simple bullet points instead")
		case strings.Contains(lower, "special character"):
			fixes = append(fixes, "Remove special characters and icons")
		case strings.Contains(lower, "graphic"):
			fixes = append(fixes, "Remove all graphics and images")
		}
	}
	return append(fixes, standingFixes...)
}

func canonSet(skills []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, s := range skills {
		set.Add(nlp.Canonical(s))
	}
	return set
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capExperience(s []resume.Experience, n int) []resume.Experience {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func joinTitled(skills []string) string {
	titled := make([]string, len(skills))
	for i, s := range skills {
		titled[i] = capitalize(s)
	}
	return strings.Join(titled, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
