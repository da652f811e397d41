package nlp

// synonymMap collapses common aliases and abbreviations to one canonical
// spelling. The table is deliberately fixed: matching must be deterministic,
// so canonical forms never depend on input order or external data.
var synonymMap = map[string]string{
	"ml":         "machine learning",
	"ai":         "artificial intelligence",
	"dl":         "deep learning",
	"sklearn":    "scikit-learn",
	"js":         "javascript",
	"ts":         "typescript",
	"reactjs":    "react",
	"react.js":   "react",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"nlp":        "natural language processing",
	"cv":         "computer vision",
	"aws":        "amazon web services",
	"gcp":        "google cloud platform",
	"azure":      "microsoft azure",
	"eda":        "exploratory data analysis",
	"api":        "application programming interface",
	"ci/cd":      "continuous integration",
	"cicd":       "continuous integration",
	"k8s":        "kubernetes",
	"qa":         "quality assurance",
	"seo":        "search engine optimization",
	"golang":     "go",
	"cpp":        "c++",
	"cplusplus":  "c++",
	"csharp":     "c#",
	"dotnet":     ".net",
	"postgres":   "postgresql",
	"fe":         "frontend",
	"be":         "backend",
	"fs":         "fullstack",
	"cad":        "computer aided design",
	"cam":        "computer aided manufacturing",
	"cae":        "computer aided engineering",
	"fea":        "finite element analysis",
	"cfd":        "computational fluid dynamics",
	"gd&t":       "geometric dimensioning and tolerancing",
	"hvac":       "heating ventilation and air conditioning",
	"bms":        "building management system",
	"plc":        "programmable logic controller",
	"scada":      "supervisory control and data acquisition",
	"pcb":        "printed circuit board",
	"vlsi":       "very large scale integration",
	"bim":        "building information modeling",
	"mep":        "mechanical electrical plumbing",
	"iot":        "internet of things",
}

// Canonical maps a skill to its canonical comparison form: alias lookup first,
// then skill-safe normalization. Canonical("JS") == Canonical("JavaScript").
func Canonical(skill string) string {
	norm := NormalizeSkill(skill)
	if canon, ok := synonymMap[norm]; ok {
		return canon
	}
	return norm
}

// CanonicalSet maps a slice of skills to the set of their canonical forms.
func CanonicalSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if c := Canonical(s); c != "" {
			out[c] = struct{}{}
		}
	}
	return out
}
