package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atslens/ats-engine/pkg/jd"
	"github.com/atslens/ats-engine/pkg/resume"
)

func sampleDoc() resume.Document {
	return resume.Document{
		ContactInfo: resume.ContactInfo{Name: "John Smith", Email: "john@example.com"},
		Summary:     "Backend engineer building data platforms.",
		Skills:      []string{"Python", "SQL", "Excel"},
		Experience: []resume.Experience{{
			Header: "Acme Corp - Backend Engineer, 2019-2023",
			Bullets: []string{
				"Responsible for nightly ETL jobs",
				"Built data pipelines in Python",
			},
		}},
		Education:      []string{"Bachelor of Science in Computer Science"},
		Certifications: []string{"AWS Certified Solutions Architect"},
	}
}

func TestOptimizeNeverFabricatesSkills(t *testing.T) {
	doc := sampleDoc()
	req := jd.Requirements{MandatorySkills: []string{"python", "kubernetes"}}

	res := Optimize(doc, req, []string{"kubernetes"}, nil)

	assert.NotContains(t, strings.ToLower(res.OptimizedResume), "kubernetes")
	assert.Contains(t, res.Improvements.SkillsSection.MissingForReference, "kubernetes")
}

func TestSuggestKeywordInsertions(t *testing.T) {
	critical := []string{"aws", "kubernetes", "terraform", "ansible", "helm", "istio"}
	important := []string{"pipelines"}

	out := suggestKeywordInsertions(critical, important)
	require.Len(t, out, 6)
	assert.Equal(t, "CRITICAL", out[0].Priority)
	assert.Equal(t, "Skills section", out[0].Location)
	assert.Equal(t, "Add 'aws' to your skills section if you have experience with it", out[0].Suggestion)
	assert.Equal(t, "IMPORTANT", out[5].Priority)
	assert.Equal(t, "Experience bullets or Summary", out[5].Location)
}

func TestSuggestBulletRewrites(t *testing.T) {
	doc := sampleDoc()
	out := suggestBulletRewrites(doc, jd.Requirements{})

	require.Len(t, out, 1)
	assert.Equal(t, "Responsible for nightly ETL jobs", out[0].Original)
	assert.Equal(t, "Developed Responsible for nightly ETL jobs, resulting in [quantifiable impact]", out[0].Improved)
}

func TestPickActionVerbPrefersJD(t *testing.T) {
	assert.Equal(t, "developed", pickActionVerb(jd.Requirements{}))
	assert.Equal(t, "built", pickActionVerb(jd.Requirements{ActionVerbs: []string{"designed", "built"}}))
}

func TestRestructureSkills(t *testing.T) {
	doc := sampleDoc()
	req := jd.Requirements{
		MandatorySkills: []string{"Python", "AWS"},
		PreferredSkills: []string{"SQL"},
	}

	section := restructureSkills(doc, req)
	assert.Equal(t, []string{"Python"}, section.Core)
	assert.Equal(t, []string{"SQL"}, section.Additional)
	assert.Equal(t, []string{"Excel"}, section.Other)
	assert.Equal(t, []string{"AWS"}, section.MissingForReference)
}

func TestOptimizeSummaryOnlyClaimsHeldSkills(t *testing.T) {
	doc := sampleDoc()
	req := jd.Requirements{MandatorySkills: []string{"sql", "kubernetes"}}

	summary := optimizeSummary(doc, req)
	assert.Contains(t, summary, "Sql")
	assert.NotContains(t, strings.ToLower(summary), "kubernetes")
}

func TestOptimizeSummaryEmptyDocument(t *testing.T) {
	doc := resume.Document{Skills: []string{"python"}}
	req := jd.Requirements{MandatorySkills: []string{"python"}}
	assert.Equal(t, "Professional with hands-on experience in Python.", optimizeSummary(doc, req))

	assert.Equal(t, "", optimizeSummary(resume.Document{}, jd.Requirements{}))
}

func TestSuggestFormattingFixes(t *testing.T) {
	doc := resume.Document{FormattingIssues: []string{"tables detected in layout"}}
	fixes := suggestFormattingFixes(doc)
	assert.Equal(t, "Remove tables - use simple bullet points instead", fixes[0])
	assert.Len(t, fixes, 1+len(standingFixes))
}

func TestRenderOptimizedResume(t *testing.T) {
	doc := sampleDoc()
	req := jd.Requirements{MandatorySkills: []string{"python"}}
	res := Optimize(doc, req, nil, nil)

	out := res.OptimizedResume
	assert.True(t, strings.HasPrefix(out, "John Smith\n"))
	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, out, "Acme Corp - Backend Engineer, 2019-2023")
	assert.Contains(t, out, "• Developed Responsible for nightly ETL jobs, resulting in [quantifiable impact]")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "CERTIFICATIONS")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderKeepsProjects(t *testing.T) {
	doc := sampleDoc()
	doc.Projects = []resume.Experience{{
		Header:  "Inventory Tracker",
		Bullets: []string{"Shipped a warehouse tracking tool used by 40 stores"},
	}}

	out := Optimize(doc, jd.Requirements{}, nil, nil).OptimizedResume
	idx := strings.Index(out, "PROJECTS\n")
	require.Greater(t, idx, strings.Index(out, "CERTIFICATIONS"))
	assert.Contains(t, out, "Inventory Tracker\n• Shipped a warehouse tracking tool used by 40 stores")
}
