package analysis

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

var weakPhrases = []string{"responsible for", "worked on", "helped with", "assisted in"}

// AnalyzeGaps classifies missing requirements: missing mandatory skills,
// certifications and education are critical; missing preferred skills and
// domain keywords are important; structural findings land in
// formatting_issues.
func AnalyzeGaps(doc resume.Document, req jd.Requirements, match MatchResult) GapReport {
	report := GapReport{
		Critical:         map[string][]string{},
		Important:        map[string][]string{},
		FormattingIssues: doc.FormattingIssues,
	}
	if report.FormattingIssues == nil {
		report.FormattingIssues = []string{}
	}

	report.Critical[CategorySkills] = match.Skills.Missing
	report.Critical[CategoryCertifications] = match.Certifications.Missing
	if match.EducationMatch {
		report.Critical[CategoryEducation] = []string{}
	} else {
		report.Critical[CategoryEducation] = []string{req.EducationRequired}
	}

	report.Important[CategorySkills] = match.PreferredSkills.Missing
	report.Important[CategoryKeywords] = missingKeywords(doc, req)
	report.Important["action_verbs"] = weakActionVerbs(doc)

	return report
}

// missingKeywords lists up to ten JD domain keywords absent from the resume.
func missingKeywords(doc resume.Document, req jd.Requirements) []string {
	resumeKeywords := mapset.NewThreadUnsafeSet[string]()
	for _, kw := range doc.Keywords {
		resumeKeywords.Add(nlp.Canonical(kw))
	}

	missing := []string{}
	for _, kw := range req.DomainKeywords {
		if !resumeKeywords.Contains(nlp.Canonical(kw)) {
			missing = append(missing, kw)
		}
	}
	sort.Strings(missing)
	if len(missing) > 10 {
		missing = missing[:10]
	}
	return missing
}

// weakActionVerbs flags bullets opening with passive phrasing, up to five.
func weakActionVerbs(doc resume.Document) []string {
	found := []string{}
	for _, exp := range doc.Experience {
		for _, bullet := range exp.Bullets {
			lower := nlp.Fold(bullet)
			for _, weak := range weakPhrases {
				if strings.Contains(lower, weak) {
					found = append(found, fmt.Sprintf("%q in: %s", weak, truncate(bullet, 50)))
					break
				}
			}
			if len(found) == 5 {
				return found
			}
		}
	}
	return found
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
