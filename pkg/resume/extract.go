package resume

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/atslens/ats-engine/pkg/nlp"
)

var (
	reEmail   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	rePhone   = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)
	reYear    = regexp.MustCompile(`\d{4}`)
	reKeyword = regexp.MustCompile(`\b[a-z]{2,}(?:[-/][a-z]{2,})*\b`)
)

// Parse builds a structured Document from extracted resume text.
func Parse(text string) Document {
	return Document{
		ContactInfo:      extractContactInfo(text),
		Summary:          extractSummary(text),
		Skills:           extractSkills(text),
		Experience:       extractExperience(text),
		Projects:         extractProjects(text),
		Education:        extractEducation(text),
		Certifications:   extractCertifications(text),
		Keywords:         extractKeywords(text),
		FormattingIssues: detectFormattingIssues(text),
	}
}

// EducationLevel returns the highest credential level found among the
// document's education entries.
func (d Document) EducationLevel() int {
	return nlp.DetectEducationLevel(strings.Join(d.Education, " "))
}

func extractContactInfo(text string) ContactInfo {
	info := ContactInfo{}
	if m := reEmail.FindString(text); m != "" {
		info.Email = m
	}
	if m := rePhone.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			info.Name = trimmed
			break
		}
	}
	info.Location = extractLocation(text)
	return info
}

var locationKeywords = []string{
	"bangalore", "mumbai", "delhi", "hyderabad", "pune", "chennai", "kolkata",
	"india", "london", "berlin", "amsterdam", "singapore", "dubai", "toronto",
	"new york", "san francisco", "seattle", "austin", "boston", "remote",
}

func extractLocation(text string) string {
	// Folding shifts byte offsets against the original text, so the match is
	// reported as the canonical keyword rather than a slice of the input.
	lower := nlp.Fold(text)
	for _, kw := range locationKeywords {
		if strings.Contains(lower, kw) {
			return titleWords(kw)
		}
	}
	return ""
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func extractSummary(text string) string {
	section := ExtractSection(text, []string{"summary", "profile", "objective", "about"})
	if section == "" {
		return ""
	}
	lines := strings.Split(section, "\n")
	// Summaries are short; cap the capture so a missing next heading does not
	// swallow the whole resume.
	if len(lines) > 6 {
		lines = lines[:6]
	}
	return strings.Join(lines, " ")
}

func extractSkills(text string) []string {
	// Keyed by folded form so casing variants collapse; section-sourced skills
	// keep the candidate's display spelling.
	found := map[string]string{}

	section := ExtractSection(text, []string{"skills", "technical skills", "core competencies", "technologies"})
	if section != "" {
		for _, item := range regexp.MustCompile(`[,;|\n•·\t*]| {2,}`).Split(section, -1) {
			display := strings.Trim(strings.TrimSpace(item), ".:()")
			folded := nlp.Fold(display)
			if len(folded) > 2 && len(folded) < 30 && len(strings.Fields(folded)) <= 4 {
				found[folded] = display
			}
		}
	}

	// Vocabulary pass catches skills mentioned outside the section.
	for _, s := range nlp.ScanSkills(text) {
		if _, ok := found[s]; !ok {
			found[s] = s
		}
	}

	skills := make([]string, 0, len(found))
	for _, s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

func extractExperience(text string) []Experience {
	section := ExtractSection(text, []string{"experience", "work experience", "employment"})
	if section == "" {
		return nil
	}

	var (
		out     []Experience
		current *Experience
	)
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// A header line carries a year ("Acme Corp - Engineer, 2019-2023").
		if reYear.MatchString(line) && !IsBulleted(line) {
			if current != nil {
				out = append(out, *current)
			}
			current = &Experience{Header: line}
			continue
		}
		if current != nil {
			current.Bullets = append(current.Bullets, TrimBullet(line))
		}
	}
	if current != nil {
		out = append(out, *current)
	}
	return out
}

// extractProjects captures the projects section: a non-bulleted line starts a
// new project, bullets attach to it.
func extractProjects(text string) []Experience {
	section := ExtractSection(text, []string{"projects", "personal projects", "academic projects"})
	if section == "" {
		return nil
	}

	var (
		out     []Experience
		current *Experience
	)
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !IsBulleted(line) {
			if current != nil {
				out = append(out, *current)
			}
			current = &Experience{Header: line}
			continue
		}
		if current == nil {
			current = &Experience{}
		}
		current.Bullets = append(current.Bullets, TrimBullet(line))
	}
	if current != nil {
		out = append(out, *current)
	}
	return out
}

func extractEducation(text string) []string {
	headers := []string{
		"education", "academic background", "academic history",
		"academic qualification", "educational qualification", "degrees",
		"academics", "academic record",
	}
	section := ExtractSection(text, headers)
	if section == "" {
		section = ExtractSection(text, []string{"education", "academic"})
	}
	if section == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		// Degree lines are short; drop artifacts and paragraphs.
		if len(line) < 5 || len(line) > 150 {
			continue
		}
		out = append(out, line)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func extractCertifications(text string) []string {
	section := ExtractSection(text, []string{"certification", "certifications", "certificates", "licenses"})
	var out []string
	for _, line := range strings.Split(section, "\n") {
		if line = strings.TrimSpace(TrimBullet(line)); line != "" {
			out = append(out, line)
		}
	}
	// Vocabulary scan catches certifications mentioned outside a dedicated
	// section.
	out = append(out, nlp.ScanCertifications(text)...)
	seen := map[string]struct{}{}
	uniq := out[:0]
	for _, c := range out {
		key := nlp.Fold(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, c)
	}
	return uniq
}

func extractKeywords(text string) []string {
	words := reKeyword.FindAllString(nlp.Fold(text), -1)
	set := map[string]struct{}{}
	for _, w := range words {
		if _, stop := nlp.StopWords[w]; !stop {
			set[w] = struct{}{}
		}
	}
	// Vocabulary skills are re-added so "c++" and ".net" survive the word
	// regex.
	for _, s := range nlp.ScanSkills(text) {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

const plainCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \n.,;:()[]{}@#$%&*+-=/<>?!\"'\t|•·–—’‘“”"

func detectFormattingIssues(text string) []string {
	var issues []string

	if strings.Contains(text, "|") || strings.Contains(text, "\t") {
		issues = append(issues, "Contains tables or tabs - may not parse correctly in ATS")
	}

	var exotic []string
	seen := map[rune]struct{}{}
	for _, r := range text {
		if strings.ContainsRune(plainCharset, r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		exotic = append(exotic, string(r))
		if len(exotic) == 5 {
			break
		}
	}
	if len(exotic) > 0 {
		issues = append(issues, "Contains special characters that may not parse: "+strings.Join(exotic, ", "))
	}

	lower := nlp.Fold(text)
	for _, marker := range []string{"[image]", "[graphic]", "[icon]"} {
		if strings.Contains(lower, marker) {
			issues = append(issues, "Contains graphics/icons - remove for ATS compatibility")
			break
		}
	}
	return issues
}
