package analysis

import (
	"fmt"
	"strings"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

// Verdict tiers, one fixed color token and recommendation template per band.
const (
	verdictStrong    = "Strong Match"
	verdictPotential = "Potential Match"
	verdictWeak      = "Needs Improvement"

	colorSuccess = "success"
	colorWarning = "warning"
	colorDanger  = "danger"
)

var softSkills = []string{"leadership", "collaboration", "communication", "problem solving", "teamwork", "agile"}

// AssessSuitability turns score and match evidence into the recruiter-facing
// verdict, narrative insights and the detail lists the dashboard consumes.
func AssessSuitability(score Score, doc resume.Document, req jd.Requirements, match MatchResult) Suitability {
	out := Suitability{
		SuitabilityScore:      score.TotalScore,
		MatchedSkills:         match.Skills.Matched,
		MissingSkills:         match.Skills.Missing,
		EducationMatch:        match.EducationMatch,
		EducationRequired:     req.EducationRequired,
		ResumeEducation:       notNil(doc.Education),
		ExperienceSummary:     experienceSnippets(doc, req),
		WorkHistory:           doc.Experience,
		MatchedCertifications: match.Certifications.Matched,
		MissingCertifications: match.Certifications.Missing,
	}
	if out.WorkHistory == nil {
		out.WorkHistory = []resume.Experience{}
	}

	switch {
	case score.TotalScore >= strongBand:
		out.Verdict = verdictStrong
		out.Color = colorSuccess
		out.RiskLevel = "Low"
		if score.Visibility.ContactDetailsUnlocked {
			out.Recommendation = "Shortlist for interview: meets the score threshold and every mandatory skill."
		} else {
			out.Recommendation = "High score but mandatory skills are incomplete. Review the critical gaps before shortlisting."
		}
	case score.TotalScore >= potentialBand:
		out.Verdict = verdictPotential
		out.Color = colorWarning
		out.RiskLevel = "Medium"
		out.Recommendation = "Solid foundation. Specific keywords and skills are needed to cross the threshold."
	default:
		out.Verdict = verdictWeak
		out.Color = colorDanger
		out.RiskLevel = "High"
		out.Recommendation = "Below the minimum match threshold; significant gaps across mandatory requirements."
	}

	out.RecruiterInsights = recruiterInsights(doc, req, match)
	return out
}

func recruiterInsights(doc resume.Document, req jd.Requirements, match MatchResult) []string {
	insights := []string{
		fmt.Sprintf("Experience Match: %s mentioned in JD.", req.ExperienceRequired),
	}

	mandatoryTotal := len(match.Skills.Matched) + len(match.Skills.Missing)
	if mandatoryTotal > 0 {
		insights = append(insights, fmt.Sprintf(
			"Technical Core: %d/%d mandatory skills found.",
			len(match.Skills.Matched), mandatoryTotal))
	}

	haystack := nlp.Fold(strings.Join(doc.Skills, " ") + " " + doc.Summary)
	var foundSoft []string
	for _, s := range softSkills {
		if strings.Contains(haystack, s) {
			foundSoft = append(foundSoft, s)
		}
	}
	if len(foundSoft) > 0 {
		insights = append(insights, "Soft Skills Found: "+strings.Join(foundSoft, ", ")+".")
	} else {
		insights = append(insights, "Soft Skills: Limited explicit soft skill keywords detected.")
	}

	certTotal := len(match.Certifications.Matched) + len(match.Certifications.Missing)
	if certTotal > 0 {
		insights = append(insights, fmt.Sprintf(
			"Certifications: %d/%d required certificates found.",
			len(match.Certifications.Matched), certTotal))
	}

	if req.EducationRequired != nlp.EducationNotSpecified {
		state := "Does not explicitly match"
		if match.EducationMatch {
			state = "Matches"
		}
		insights = append(insights, fmt.Sprintf("Education: %s (%s required).", state, req.EducationRequired))
	} else {
		insights = append(insights, "Education: No specific degree requirement detected in JD.")
	}

	return insights
}

// experienceSnippets pulls up to three bullets that mention a top JD keyword,
// prefixed with their job header, as evidence for the recruiter.
func experienceSnippets(doc resume.Document, req jd.Requirements) []string {
	keywords := req.DomainKeywords
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	snippets := []string{}
	for _, exp := range doc.Experience {
		for _, bullet := range exp.Bullets {
			lower := nlp.Fold(bullet)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					snippets = append(snippets, exp.Header+": "+truncate(bullet, 100))
					break
				}
			}
			if len(snippets) == 3 {
				return snippets
			}
		}
	}
	return snippets
}

func notNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
