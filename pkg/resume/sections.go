package resume

import (
	"strings"

	"github.com/atslens/ats-engine/pkg/nlp"
)

var sectionHeaderWords = []string{
	"summary", "profile", "experience", "employment", "education", "academic",
	"qualification", "skills", "technical", "certifications", "certificates",
	"projects", "achievements", "awards", "degrees", "history", "background",
}

// IsSectionHeader reports whether a line looks like a resume section heading:
// short and containing one of the conventional heading words.
func IsSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) >= 50 {
		return false
	}
	lower := nlp.Fold(trimmed)
	for _, h := range sectionHeaderWords {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// ExtractSection captures the body of the first section whose heading matches
// one of the given keywords, up to the next unrelated heading.
func ExtractSection(text string, keywords []string) string {
	var body []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := nlp.Fold(trimmed)

		isHeading := false
		for _, kw := range keywords {
			if lower == kw || lower == kw+":" {
				isHeading = true
				break
			}
		}
		if !isHeading && len(trimmed) < 40 {
			// Compound headings like "EDUCATION AND CERTIFICATIONS".
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					isHeading = true
					break
				}
			}
		}

		if isHeading && !inSection {
			inSection = true
			continue
		}
		if inSection {
			if IsSectionHeader(trimmed) && !containsAnyKeyword(lower, keywords) {
				break
			}
			body = append(body, trimmed)
		}
	}
	return strings.Join(body, "\n")
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// TrimBullet strips the leading bullet marker and surrounding space.
func TrimBullet(line string) string {
	return strings.TrimLeft(line, "•-*·◦▪ \t")
}

// IsBulleted reports whether a line starts with a bullet marker.
func IsBulleted(line string) bool {
	for _, prefix := range []string{"•", "-", "*", "·", "◦", "▪"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
