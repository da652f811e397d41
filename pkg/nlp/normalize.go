package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Skill tokens keep +, #, . and / so that "c++", "c#", ".net" and "ci/cd"
	// survive normalization.
	reNonSkill = regexp.MustCompile(`[^\p{L}\p{N}+#./]+`)
	reNonWord  = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces   = regexp.MustCompile(`\s+`)

	foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Fold lowercases a string and strips combining marks, so "Résumé" compares
// equal to "resume".
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Normalize folds a string and replaces every non-alphanumeric run with a
// single space. Used for free-text comparison.
func Normalize(s string) string {
	s = Fold(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeSkill is a gentler Normalize for skill phrases: punctuation that is
// part of technology names ("c++", ".net", "ci/cd") is preserved.
func NormalizeSkill(s string) string {
	s = Fold(s)
	s = reNonSkill.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimRight(strings.TrimSpace(s), ".")
}

// Tokens returns the unique tokens of a normalized string.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Split(normalized, " ") {
		if t != "" {
			out[t] = struct{}{}
		}
	}
	return out
}

// ContainsPhrase reports whether a normalized phrase occurs in a normalized
// text as whole words. "rest api" is found in "... rest api ..." but not in
// "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
