package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSkills(t *testing.T) {
	text := "Built microservices in Python and Go, deployed with Docker on AWS. Java experience welcome."
	found := ScanSkills(text)
	assert.Contains(t, found, "python")
	assert.Contains(t, found, "go")
	assert.Contains(t, found, "docker")
	assert.Contains(t, found, "aws")
	assert.Contains(t, found, "java")
	assert.NotContains(t, found, "javascript")
}

func TestScanSkillsPunctuatedNames(t *testing.T) {
	found := ScanSkills("Migrated a C++ codebase to .NET and fixed the CI with node.js tooling")
	assert.Contains(t, found, "c++")
	assert.Contains(t, found, ".net")
	assert.Contains(t, found, "node.js")
}

func TestScanCertifications(t *testing.T) {
	found := ScanCertifications("Certifications: AWS Certified Developer, PMP, CCNA")
	assert.Contains(t, found, "AWS CERTIFIED")
	assert.Contains(t, found, "PMP")
	assert.Contains(t, found, "CCNA")
	assert.Empty(t, ScanCertifications("no credentials here"))
}

func TestDetectEducationLevel(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"PhD in Computer Science, Stanford", EducationDoctorate},
		{"Master of Science in Data Engineering", EducationMaster},
		{"MBA, Wharton", EducationMaster},
		{"Bachelor of Technology in Mechanical Engineering", EducationBachelor},
		{"B.Tech from IIT Delhi", EducationBachelor},
		{"Diploma in Electronics", EducationAssociate},
		{"ten years of plumbing", EducationNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectEducationLevel(tt.text), "text %q", tt.text)
	}
}

func TestDetectEducationLevelPicksHighest(t *testing.T) {
	text := "Master of Science 2018. Bachelor of Science 2016."
	assert.Equal(t, EducationMaster, DetectEducationLevel(text))
}

func TestEducationLabelRoundTrip(t *testing.T) {
	for _, level := range []int{EducationAssociate, EducationBachelor, EducationMaster, EducationDoctorate} {
		assert.Equal(t, level, EducationLevelFromLabel(EducationLabel(level)))
	}
	assert.Equal(t, EducationNotSpecified, EducationLabel(EducationNone))
	assert.Equal(t, EducationNone, EducationLevelFromLabel("Not specified"))
}
