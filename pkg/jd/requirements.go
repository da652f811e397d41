package jd

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/atslens/ats-engine/pkg/nlp"
	"github.com/atslens/ats-engine/pkg/resume"
)

// ErrEmptyDescription is returned when the job description is blank after
// trimming. Empty input is the one hard failure of this parser; anything else
// degrades to empty requirement sets.
var ErrEmptyDescription = errors.New("job description cannot be empty")

// Requirements is the structured form of a free-text job description,
// immutable after parsing.
type Requirements struct {
	MandatorySkills        []string           `json:"mandatory_skills"`
	PreferredSkills        []string           `json:"preferred_skills"`
	ToolsTechnologies      []string           `json:"tools_technologies"`
	RequiredCertifications []string           `json:"required_certifications"`
	EducationRequired      string             `json:"education_required"`
	ExperienceRequired     string             `json:"experience_required"`
	Responsibilities       []string           `json:"responsibilities"`
	DomainKeywords         []string           `json:"domain_keywords"`
	ActionVerbs            []string           `json:"action_verbs"`
	WeightedKeywords       map[string]float64 `json:"weighted_keywords"`
}

var (
	mandatoryMarkers = []string{"required", "must have", "essential", "mandatory", "requirements"}
	preferredMarkers = []string{"preferred", "nice to have", "bonus", "plus", "desired"}

	reExperience = regexp.MustCompile(`(\d+(?:\s?(?:-|to)\s?\d+)?)\+?\s*(?:years?|yrs?)(?:\s*of)?(?:\s*experience)?`)
)

// Parse extracts structured requirements from a job description. Extraction is
// best effort: a category absent from the text produces an empty set.
func Parse(text string) (Requirements, error) {
	if strings.TrimSpace(text) == "" {
		return Requirements{}, ErrEmptyDescription
	}

	req := Requirements{
		MandatorySkills:        markedSkills(text, mandatoryMarkers, 25),
		PreferredSkills:        markedSkills(text, preferredMarkers, 10),
		ToolsTechnologies:      nlp.ScanSkills(text),
		RequiredCertifications: nlp.ScanCertifications(text),
		EducationRequired:      educationRequirement(text),
		ExperienceRequired:     experienceRequirement(text),
		Responsibilities:       responsibilities(text),
		DomainKeywords:         domainKeywords(text),
		ActionVerbs:            actionVerbs(text),
	}
	req.WeightedKeywords = weightKeywords(text, req.DomainKeywords)
	return req, nil
}

// markedSkills scans for lines framed by the given markers and collects
// vocabulary skills from the marker line plus a bounded lookahead window,
// stopping at the next unrelated section heading.
func markedSkills(text string, markers []string, lookahead int) []string {
	skills := mapset.NewThreadUnsafeSet[string]()
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lower := nlp.Fold(line)
		if !containsAny(lower, markers) {
			continue
		}
		skills.Append(nlp.ScanSkills(line)...)

		for offset := 1; offset <= lookahead && i+offset < len(lines); offset++ {
			next := strings.TrimSpace(lines[i+offset])
			if next == "" {
				continue
			}
			if resume.IsSectionHeader(next) && !containsAny(nlp.Fold(next), markers) {
				break
			}
			skills.Append(nlp.ScanSkills(next)...)
		}
	}

	out := skills.ToSlice()
	sort.Strings(out)
	return out
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func educationRequirement(text string) string {
	if level := nlp.DetectEducationLevel(text); level != nlp.EducationNone {
		return nlp.EducationLabel(level)
	}
	return nlp.EducationNotSpecified
}

func experienceRequirement(text string) string {
	if m := reExperience.FindString(nlp.Fold(text)); m != "" {
		return strings.TrimSpace(m)
	}
	return "Not specified"
}

func responsibilities(text string) []string {
	section := resume.ExtractSection(text, []string{"responsibilities", "duties", "you will"})
	if section == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if resume.IsBulleted(line) || len(out) < 10 {
			out = append(out, resume.TrimBullet(line))
		}
	}
	return out
}

var reKeyword = regexp.MustCompile(`\b[a-z]{2,}(?:[-/][a-z]{2,})*\b`)

func domainKeywords(text string) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, w := range reKeyword.FindAllString(nlp.Fold(text), -1) {
		if _, stop := nlp.StopWords[w]; !stop {
			set.Add(w)
		}
	}
	set.Append(nlp.ScanSkills(text)...)
	out := set.ToSlice()
	sort.Strings(out)
	return out
}

func actionVerbs(text string) []string {
	lower := nlp.Fold(text)
	var out []string
	for _, verb := range nlp.ActionVerbs {
		if strings.Contains(lower, verb) {
			out = append(out, verb)
		}
	}
	return out
}

// weightKeywords boosts keywords that appear in the title or the opening lines
// of the posting; those carry the role's identity.
func weightKeywords(text string, keywords []string) map[string]float64 {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	early := nlp.Fold(strings.Join(lines, " "))

	weights := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(early, kw) {
			weights[kw] = 1.5
		} else {
			weights[kw] = 1.0
		}
	}
	return weights
}
