package analysis

import (
	"math"
	"strings"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

// Category weights, fixed per deployment. They must sum to exactly 1.0; the
// scorer tests pin that invariant.
var categoryWeights = map[string]float64{
	CategorySkills:         0.35,
	CategoryKeywords:       0.25,
	CategoryExperience:     0.15,
	CategoryEducation:      0.10,
	CategoryCertifications: 0.10,
	CategoryFormatting:     0.05,
}

// ComputeScore produces the weighted breakdown and total. A category with no
// mandatory requirements scores exactly 100: unconstrained categories carry
// no penalty.
func ComputeScore(doc resume.Document, req jd.Requirements, match MatchResult) Score {
	breakdown := map[string]CategoryScore{
		CategorySkills: {
			Score:   ratioScore(len(match.Skills.Matched), len(match.Skills.Matched)+len(match.Skills.Missing)),
			Weight:  categoryWeights[CategorySkills],
			Matched: match.Skills.Matched,
			Missing: match.Skills.Missing,
		},
		CategoryKeywords: {
			Score:  keywordScore(doc, req),
			Weight: categoryWeights[CategoryKeywords],
		},
		CategoryExperience: {
			Score:  experienceScore(doc, req),
			Weight: categoryWeights[CategoryExperience],
		},
		CategoryEducation: {
			Score:  educationScore(match, req),
			Weight: categoryWeights[CategoryEducation],
		},
		CategoryCertifications: {
			Score:   ratioScore(len(match.Certifications.Matched), len(match.Certifications.Matched)+len(match.Certifications.Missing)),
			Weight:  categoryWeights[CategoryCertifications],
			Matched: match.Certifications.Matched,
			Missing: match.Certifications.Missing,
		},
		CategoryFormatting: {
			Score:  formattingScore(doc),
			Weight: categoryWeights[CategoryFormatting],
		},
	}

	var total float64
	for _, cs := range breakdown {
		total += float64(cs.Score) * cs.Weight
	}
	totalScore := clamp(int(math.Round(total)), 0, 100)

	return Score{
		TotalScore: totalScore,
		Visibility: Gate(totalScore, match),
		Breakdown:  breakdown,
	}
}

// ratioScore is the shared mandatory-coverage formula; zero requirements
// default to a full score.
func ratioScore(matched, required int) int {
	if required == 0 {
		return 100
	}
	return clamp(int(math.Round(float64(matched)/float64(required)*100)), 0, 100)
}

// keywordScore measures weighted coverage of JD keywords by the resume's
// keyword set, both sides canonicalized.
func keywordScore(doc resume.Document, req jd.Requirements) int {
	if len(req.WeightedKeywords) == 0 {
		return 100
	}
	resumeKeywords := nlp.CanonicalSet(doc.Keywords)

	// JD keywords canonicalize key by key; a keyword and its alias keep the
	// higher weight.
	normalized := make(map[string]float64, len(req.WeightedKeywords))
	for kw, w := range req.WeightedKeywords {
		canon := nlp.Canonical(kw)
		if w > normalized[canon] {
			normalized[canon] = w
		}
	}

	var max, got float64
	for kw, w := range normalized {
		max += w
		if _, ok := resumeKeywords[kw]; ok {
			got += w
		}
	}
	if max == 0 {
		return 100
	}
	return clamp(int(math.Round(got/max*100)), 0, 100)
}

// experienceScore blends JD keyword coverage inside work history (70%) with
// action-verb density (30%). Bands are non-linear so partial context coverage
// is not punished as harshly as missing skills.
func experienceScore(doc resume.Document, req jd.Requirements) int {
	if len(doc.Experience) == 0 {
		// Partial credit: experience often hides in other sections.
		return 20
	}

	var sb strings.Builder
	for _, exp := range doc.Experience {
		sb.WriteString(exp.Header)
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(exp.Bullets, " "))
		sb.WriteByte(' ')
	}
	expText := nlp.Fold(sb.String())

	keywords := req.DomainKeywords
	if len(keywords) > 25 {
		keywords = keywords[:25]
	}
	var contextScore float64
	if len(keywords) == 0 {
		contextScore = 100
	} else {
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(expText, nlp.Canonical(kw)) || strings.Contains(expText, kw) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(keywords))
		switch {
		case ratio > 0.6:
			contextScore = 100
		case ratio > 0.3:
			contextScore = 85
		default:
			contextScore = 50 + ratio*100
		}
	}

	verbs := 0
	for _, v := range nlp.ActionVerbs {
		if strings.Contains(expText, v) {
			verbs++
		}
	}
	verbScore := math.Min(float64(verbs)/10*100, 100)

	return clamp(int(math.Round(contextScore*0.7+verbScore*0.3)), 0, 100)
}

func educationScore(match MatchResult, req jd.Requirements) int {
	if req.EducationRequired == nlp.EducationNotSpecified || req.EducationRequired == "" {
		return 100
	}
	if match.EducationMatch {
		return 100
	}
	return 0
}

// formattingScore deducts a flat 15 points per detected issue.
func formattingScore(doc resume.Document) int {
	return clamp(100-len(doc.FormattingIssues)*15, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
