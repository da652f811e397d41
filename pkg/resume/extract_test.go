package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atslens/ats-engine/pkg/nlp"
)

const sampleResume = `John Smith
john.smith@example.com
+1 555 123 4567
New York

SUMMARY
Software engineer focused on data platforms and cloud infrastructure.

SKILLS
Python, SQL, AWS, Docker

EXPERIENCE
Acme Corp - Backend Engineer, 2019-2023
• Developed data pipelines in Python
• Responsible for nightly ETL jobs

EDUCATION
Bachelor of Science in Computer Science, 2019

CERTIFICATIONS
AWS Certified Solutions Architect

PROJECTS
Inventory Tracker
- Shipped a warehouse tracking tool used by 40 stores
Billing Dashboard
- Visualized invoice aging for the finance team`

func TestParseContactInfo(t *testing.T) {
	doc := Parse(sampleResume)
	assert.Equal(t, "John Smith", doc.ContactInfo.Name)
	assert.Equal(t, "john.smith@example.com", doc.ContactInfo.Email)
	assert.Equal(t, "+1 555 123 4567", doc.ContactInfo.Phone)
	assert.Equal(t, "New York", doc.ContactInfo.Location)
}

func TestParseSummary(t *testing.T) {
	doc := Parse(sampleResume)
	assert.Contains(t, doc.Summary, "data platforms")
	assert.NotContains(t, doc.Summary, "Python, SQL")
}

func TestParseSkillsKeepDisplayCasing(t *testing.T) {
	doc := Parse(sampleResume)
	for _, want := range []string{"Python", "SQL", "AWS", "Docker"} {
		assert.Contains(t, doc.Skills, want)
	}
	// The vocabulary pass must not re-add folded duplicates.
	assert.NotContains(t, doc.Skills, "python")
}

func TestParseExperience(t *testing.T) {
	doc := Parse(sampleResume)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme Corp - Backend Engineer, 2019-2023", doc.Experience[0].Header)
	require.Len(t, doc.Experience[0].Bullets, 2)
	assert.Equal(t, "Developed data pipelines in Python", doc.Experience[0].Bullets[0])
}

func TestParseEducation(t *testing.T) {
	doc := Parse(sampleResume)
	require.NotEmpty(t, doc.Education)
	assert.Contains(t, doc.Education[0], "Bachelor of Science")
	assert.Equal(t, nlp.EducationBachelor, doc.EducationLevel())
}

func TestParseProjects(t *testing.T) {
	doc := Parse(sampleResume)
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "Inventory Tracker", doc.Projects[0].Header)
	require.Len(t, doc.Projects[0].Bullets, 1)
	assert.Equal(t, "Shipped a warehouse tracking tool used by 40 stores", doc.Projects[0].Bullets[0])
	assert.Equal(t, "Billing Dashboard", doc.Projects[1].Header)
}

func TestParseLocationAfterAccentedText(t *testing.T) {
	// Folding shrinks accented runes, so a byte index from the folded text
	// must never be applied to the original.
	got := extractLocation("Résumé – Zoë Müller\nSenior Engineer in Berlin, Germany\n")
	assert.Equal(t, "Berlin", got)
}

func TestParseLocationCanonicalCasing(t *testing.T) {
	assert.Equal(t, "New York", extractLocation("based in NEW YORK, open to relocation"))
	assert.Equal(t, "Remote", extractLocation("remote-first team"))
	assert.Equal(t, "", extractLocation("no city mentioned"))
}

func TestParseCertifications(t *testing.T) {
	doc := Parse(sampleResume)
	assert.Contains(t, doc.Certifications, "AWS Certified Solutions Architect")
}

func TestParseKeywordsFilterStopWords(t *testing.T) {
	doc := Parse(sampleResume)
	assert.Contains(t, doc.Keywords, "python")
	assert.Contains(t, doc.Keywords, "pipelines")
	assert.NotContains(t, doc.Keywords, "the")
	assert.NotContains(t, doc.Keywords, "and")
}

func TestFormattingIssuesClean(t *testing.T) {
	doc := Parse(sampleResume)
	assert.Empty(t, doc.FormattingIssues)
}

func TestFormattingIssuesTables(t *testing.T) {
	doc := Parse("John Smith\nskills\tPython | SQL\nEXPERIENCE\nAcme 2020\n• built things")
	require.NotEmpty(t, doc.FormattingIssues)
	assert.Contains(t, doc.FormattingIssues[0], "tables or tabs")
}

func TestParseNoSections(t *testing.T) {
	doc := Parse("Jane Doe\njane@example.com\nJust a paragraph about Python work.")
	assert.Equal(t, "Jane Doe", doc.ContactInfo.Name)
	assert.Empty(t, doc.Experience)
	assert.Contains(t, doc.Skills, "python")
}
