package analysis

import (
	"time"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/optimizer"
	"github.com/atslens/ats-engine/pkg/resume"
)

// Category names used across breakdowns and gap maps.
const (
	CategorySkills         = "skills"
	CategoryKeywords       = "keywords"
	CategoryExperience     = "experience"
	CategoryEducation      = "education"
	CategoryCertifications = "certifications"
	CategoryFormatting     = "formatting"
)

// CategoryMatch holds the matched and missing requirement items of one
// category, both sorted for determinism.
type CategoryMatch struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchResult is the Matcher output: per-category matched/missing sets plus
// the ordinal education comparison. Recomputed per request, never persisted.
type MatchResult struct {
	Skills          CategoryMatch `json:"skills"`
	PreferredSkills CategoryMatch `json:"preferred_skills"`
	Certifications  CategoryMatch `json:"certifications"`
	EducationMatch  bool          `json:"education_match"`
	ResumeEducation int           `json:"-"`
	// Display list of education entries from the resume.
	ResumeEducationLines []string `json:"-"`
}

// CategoryScore is one breakdown entry. Weight is a fraction; weights across
// the breakdown sum to exactly 1.0.
type CategoryScore struct {
	Score   int      `json:"score"`
	Weight  float64  `json:"weight"`
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Visibility is the recruiter-facing gating decision derived from score and
// match completeness. It is policy, not scoring: see Gate.
type Visibility struct {
	IsRecruiterVisible     bool     `json:"is_recruiter_visible"`
	IsLimitedVisibility    bool     `json:"is_limited_visibility"`
	IsHidden               bool     `json:"is_hidden"`
	ContactDetailsUnlocked bool     `json:"contact_details_unlocked"`
	MissingMandatory       []string `json:"missing_mandatory"`
}

// Score is the Scorer output.
type Score struct {
	TotalScore int                      `json:"total_score"`
	Visibility Visibility               `json:"visibility_status"`
	Breakdown  map[string]CategoryScore `json:"breakdown"`
}

// GapReport classifies missing requirements by severity.
type GapReport struct {
	Critical         map[string][]string `json:"critical"`
	Important        map[string][]string `json:"important"`
	FormattingIssues []string            `json:"formatting_issues"`
}

// Suitability is the recruiter-facing verdict with the evidence that produced
// it, duplicated from MatchResult for direct consumption.
type Suitability struct {
	Verdict               string              `json:"verdict"`
	Color                 string              `json:"color"`
	Recommendation        string              `json:"recommendation"`
	RecruiterInsights     []string            `json:"recruiter_insights"`
	RiskLevel             string              `json:"risk_level"`
	SuitabilityScore      int                 `json:"suitability_score"`
	MatchedSkills         []string            `json:"matched_skills"`
	MissingSkills         []string            `json:"missing_skills"`
	EducationMatch        bool                `json:"education_match"`
	EducationRequired     string              `json:"education_required"`
	ResumeEducation       []string            `json:"resume_education"`
	ExperienceSummary     []string            `json:"experience_summary"`
	WorkHistory           []resume.Experience `json:"work_history"`
	MatchedCertifications []string            `json:"matched_certifications"`
	MissingCertifications []string            `json:"missing_certifications"`
}

// Result is the full analysis response for one resume/JD pair.
type Result struct {
	Success         bool                   `json:"success"`
	Timestamp       time.Time              `json:"timestamp"`
	Score           Score                  `json:"score"`
	Suitability     Suitability            `json:"suitability"`
	Gaps            GapReport              `json:"gaps"`
	ResumeData      resume.Document        `json:"resume_data"`
	JDData          jd.Requirements        `json:"jd_data"`
	Improvements    optimizer.Improvements `json:"improvements"`
	OptimizedResume string                 `json:"optimized_resume"`
}
