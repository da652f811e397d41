package nlp

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// SkillVocabulary groups known skills by domain. Scanning a text against this
// table gives high-precision skill hits; section-level extraction on top of it
// gives recall for skills outside the table.
var SkillVocabulary = map[string][]string{
	"frontend": {
		"react", "angular", "vue", "nextjs", "typescript", "javascript", "html",
		"css", "sass", "tailwind", "redux", "webpack", "jquery", "bootstrap",
	},
	"backend": {
		"python", "java", "node.js", "go", "golang", "ruby", "php", "rust",
		"c#", "c++", ".net", "flask", "django", "spring", "express", "laravel",
		"fastapi", "rails", "scala", "kotlin",
	},
	"database": {
		"sql", "nosql", "mongodb", "postgresql", "mysql", "redis",
		"elasticsearch", "cassandra", "dynamodb", "oracle", "sqlite", "mariadb",
	},
	"cloud_devops": {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git",
		"github", "gitlab", "terraform", "ansible", "prometheus", "grafana",
		"bash", "shell", "linux", "unix",
	},
	"data_science": {
		"pandas", "numpy", "scipy", "scikit-learn", "tensorflow", "pytorch",
		"keras", "nlp", "computer vision", "data mining", "tableau", "powerbi",
		"big data", "hadoop", "spark", "kafka", "airflow", "etl",
		"machine learning", "deep learning", "ai", "ml", "genai", "llm", "rag",
	},
	"mobile": {
		"react native", "flutter", "swift", "kotlin", "objective-c", "ios",
		"android", "xamarin", "dart",
	},
	"mechanical": {
		"autocad", "solidworks", "catia", "ansys", "creo", "cae", "cam", "cnc",
		"gd&t", "hvac", "thermodynamics", "fea", "cfd", "robotics", "matlab",
		"simulink", "six sigma", "lean manufacturing",
	},
	"electrical": {
		"plc", "scada", "verilog", "vhdl", "fpga", "microcontrollers",
		"arduino", "pcb design", "embedded systems", "iot", "signal processing",
		"control systems", "labview",
	},
	"civil": {
		"revit", "staad.pro", "etabs", "primavera", "bim", "gis", "arcgis",
		"structural analysis", "surveying", "geotechnical",
	},
	"business": {
		"salesforce", "hubspot", "crm", "seo", "sem", "google analytics",
		"excel", "powerpoint", "financial analysis", "accounting", "marketing",
		"sales", "business development", "supply chain", "logistics",
		"recruitment",
	},
	"professional": {
		"agile", "scrum", "kanban", "jira", "confluence", "project management",
		"leadership", "communication", "problem solving", "teamwork",
		"collaboration", "stakeholder management", "sdlc", "waterfall",
		"critical thinking", "time management",
	},
}

// StopWords filtered out of keyword extraction.
var StopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an and are as at be by for from has he in is it its of on that the " +
			"to was will with have had been this which who whom whose their they " +
			"them both each few more most other some such no nor not only own " +
			"same so than too very can just should now about across after " +
			"against along among around because before behind below beneath " +
			"beside between beyond but concerning despite down during except " +
			"following including into like near off onto out over past plus " +
			"regarding since through throughout towards under until up upon " +
			"within without we you your our or if any strong work team years " +
			"experience") {
		StopWords[w] = struct{}{}
	}
}

// ActionVerbs signal impact-oriented resume bullets.
var ActionVerbs = []string{
	"achieved", "implemented", "developed", "managed", "led", "created",
	"designed", "built", "improved", "increased", "reduced", "optimized",
	"delivered", "launched", "established", "coordinated", "executed",
	"analyzed", "resolved", "streamlined", "automated", "collaborated",
	"spearheaded", "orchestrated", "pioneered", "transformed", "drove",
	"architected", "facilitated", "modernized", "overhauled", "consolidated",
	"mentored", "authored", "presented", "negotiated",
}

// Certifications recognized in resumes and job descriptions.
var Certifications = []string{
	"pmp", "aws certified", "azure certified", "google cloud certified",
	"comptia", "cissp", "ccna", "ccnp", "itil", "six sigma", "cpa", "cfa",
	"shrm", "ocp", "mcp", "ceh", "certified ethical hacker",
	"project management professional", "scrum master", "csm", "psm",
	"aws solutions architect", "ckad", "cka", "prince2", "safe", "togaf",
	"cism", "cisa",
}

// Education levels on an ordinal ladder. A resume matches a requirement when
// its highest detected level meets or exceeds the required one.
const (
	EducationNone      = 0
	EducationAssociate = 1
	EducationBachelor  = 2
	EducationMaster    = 3
	EducationDoctorate = 4
)

// EducationNotSpecified is the sentinel for job descriptions that state no
// degree requirement.
const EducationNotSpecified = "Not specified"

var educationKeywords = map[int][]string{
	EducationDoctorate: {"phd", "ph.d", "doctorate", "doctoral"},
	EducationMaster:    {"master", "masters", "m.s", "mtech", "m.tech", "mba", "m.b.a", "m.a", "msc", "m.sc"},
	EducationBachelor:  {"bachelor", "bachelors", "bs", "b.s", "btech", "b.tech", "b.e", "b.a", "bsc", "b.sc", "undergraduate"},
	EducationAssociate: {"associate", "diploma"},
}

var educationLabels = map[int]string{
	EducationAssociate: "Associate",
	EducationBachelor:  "Bachelor",
	EducationMaster:    "Master",
	EducationDoctorate: "Doctorate",
}

// Patterns are cached because vocabulary scans run per request; sync.Map keeps
// the cache safe under concurrent requests.
var wordBoundaryCache sync.Map

func boundaryPattern(term string) *regexp.Regexp {
	if re, ok := wordBoundaryCache.Load(term); ok {
		return re.(*regexp.Regexp)
	}
	var re *regexp.Regexp
	if strings.ContainsAny(term, "+#.") {
		// \b misfires next to +, # and leading dots, so anchor on separators.
		re = regexp.MustCompile(`(?:^|[\s,;(\[])` + regexp.QuoteMeta(term) + `(?:$|[\s,;)\].])`)
	} else {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	wordBoundaryCache.Store(term, re)
	return re
}

// ContainsTerm reports whether a lowercased text mentions a vocabulary term as
// a whole word, tolerating the punctuation of terms like "c++" or ".net".
func ContainsTerm(lowerText, term string) bool {
	return boundaryPattern(term).MatchString(lowerText)
}

// ScanSkills returns every vocabulary skill mentioned in the text, sorted.
func ScanSkills(text string) []string {
	lower := Fold(text)
	found := map[string]struct{}{}
	for _, skills := range SkillVocabulary {
		for _, skill := range skills {
			if ContainsTerm(lower, skill) {
				found[skill] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ScanCertifications returns every known certification mentioned in the text,
// uppercased for display, sorted.
func ScanCertifications(text string) []string {
	lower := Fold(text)
	found := map[string]struct{}{}
	for _, cert := range Certifications {
		if ContainsTerm(lower, cert) {
			found[strings.ToUpper(cert)] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// DetectEducationLevel returns the highest education level mentioned in the
// text, or EducationNone.
func DetectEducationLevel(text string) int {
	lower := Fold(text)
	for level := EducationDoctorate; level >= EducationAssociate; level-- {
		for _, kw := range educationKeywords[level] {
			if ContainsTerm(lower, kw) {
				return level
			}
		}
	}
	return EducationNone
}

// EducationLabel renders a level as the display string used in API payloads.
func EducationLabel(level int) string {
	if label, ok := educationLabels[level]; ok {
		return label
	}
	return EducationNotSpecified
}

// EducationLevelFromLabel is the inverse of EducationLabel.
func EducationLevelFromLabel(label string) int {
	for level, l := range educationLabels {
		if strings.EqualFold(l, label) {
			return level
		}
	}
	return EducationNone
}
