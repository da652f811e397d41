package analysis

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

// Match compares an extracted resume against parsed job requirements.
// Skill comparison is by canonical form only: exact match after
// normalization, or a recognized synonym. Substrings never match, so
// "java" in a resume does not satisfy "javascript".
func Match(doc resume.Document, req jd.Requirements) MatchResult {
	resumeSkills := canonicalSet(doc.Skills)

	result := MatchResult{
		Skills:               matchCategory(req.MandatorySkills, resumeSkills),
		PreferredSkills:      matchCategory(req.PreferredSkills, resumeSkills),
		Certifications:       matchCertifications(req.RequiredCertifications, doc.Certifications),
		ResumeEducation:      doc.EducationLevel(),
		ResumeEducationLines: doc.Education,
	}
	result.EducationMatch = educationMatches(result.ResumeEducation, req.EducationRequired)
	return result
}

func canonicalSet(skills []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, s := range skills {
		if c := nlp.Canonical(s); c != "" {
			set.Add(c)
		}
	}
	return set
}

// matchCategory partitions required items into matched and missing by
// canonical equality. Output lists keep the requirement's original spelling.
func matchCategory(required []string, resumeSkills mapset.Set[string]) CategoryMatch {
	cm := CategoryMatch{Matched: []string{}, Missing: []string{}}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, want := range required {
		canon := nlp.Canonical(want)
		if canon == "" || !seen.Add(canon) {
			continue
		}
		if resumeSkills.Contains(canon) {
			cm.Matched = append(cm.Matched, want)
		} else {
			cm.Missing = append(cm.Missing, want)
		}
	}
	sort.Strings(cm.Matched)
	sort.Strings(cm.Missing)
	return cm
}

// matchCertifications uses containment rather than equality: certification
// names are nested inside longer credential lines ("AWS Certified Solutions
// Architect – Associate, 2022").
func matchCertifications(required, resumeCerts []string) CategoryMatch {
	cm := CategoryMatch{Matched: []string{}, Missing: []string{}}
	lines := make([]string, len(resumeCerts))
	for i, c := range resumeCerts {
		lines[i] = nlp.Fold(c)
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, want := range required {
		key := nlp.Fold(want)
		if key == "" || !seen.Add(key) {
			continue
		}
		matched := false
		for _, line := range lines {
			if strings.Contains(line, key) {
				matched = true
				break
			}
		}
		if matched {
			cm.Matched = append(cm.Matched, want)
		} else {
			cm.Missing = append(cm.Missing, want)
		}
	}
	sort.Strings(cm.Matched)
	sort.Strings(cm.Missing)
	return cm
}

// educationMatches applies the ordinal ladder: the resume's highest credential
// must meet or exceed the required level. No requirement always matches.
func educationMatches(resumeLevel int, required string) bool {
	if required == nlp.EducationNotSpecified || required == "" {
		return true
	}
	requiredLevel := nlp.EducationLevelFromLabel(required)
	if requiredLevel == nlp.EducationNone {
		return true
	}
	return resumeLevel >= requiredLevel
}
