package optimizer

import (
	"strings"

	"github.com/atslens/ats-engine/pkg/resume"
)

// render assembles the optimized resume as plain text with standard section
// headings. Every line is sourced from the original document or from the
// already-vetted improvement set.
func render(doc resume.Document, imp Improvements) string {
	var b strings.Builder

	renderContact(&b, doc.ContactInfo)

	summary := imp.SummaryOptimization
	if summary == "" {
		summary = strings.TrimSpace(doc.Summary)
	}
	if summary != "" {
		b.WriteString("PROFESSIONAL SUMMARY\n")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	renderSkills(&b, imp.SkillsSection)
	renderExperience(&b, doc.Experience, imp.BulletPointRewrites)

	if len(doc.Education) > 0 {
		b.WriteString("EDUCATION\n")
		for _, line := range doc.Education {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(doc.Certifications) > 0 {
		b.WriteString("CERTIFICATIONS\n")
		for _, cert := range doc.Certifications {
			b.WriteString("• ")
			b.WriteString(cert)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	renderProjects(&b, doc.Projects)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderContact(b *strings.Builder, c resume.ContactInfo) {
	if c.Name != "" {
		b.WriteString(c.Name)
		b.WriteString("\n")
	}
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func renderSkills(b *strings.Builder, s SkillsSection) {
	if len(s.Core)+len(s.Additional)+len(s.Other) == 0 {
		return
	}
	b.WriteString("SKILLS\n")
	if len(s.Core) > 0 {
		b.WriteString("Core: ")
		b.WriteString(strings.Join(s.Core, ", "))
		b.WriteString("\n")
	}
	if len(s.Additional) > 0 {
		b.WriteString("Additional: ")
		b.WriteString(strings.Join(s.Additional, ", "))
		b.WriteString("\n")
	}
	if len(s.Other) > 0 {
		b.WriteString("Other: ")
		b.WriteString(strings.Join(s.Other, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func renderProjects(b *strings.Builder, projects []resume.Experience) {
	if len(projects) == 0 {
		return
	}
	b.WriteString("PROJECTS\n")
	for _, p := range projects {
		if p.Header != "" {
			b.WriteString(p.Header)
			b.WriteString("\n")
		}
		for _, bullet := range p.Bullets {
			b.WriteString("• ")
			b.WriteString(bullet)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func renderExperience(b *strings.Builder, jobs []resume.Experience, rewrites []BulletRewrite) {
	if len(jobs) == 0 {
		return
	}
	improved := make(map[string]string, len(rewrites))
	for _, rw := range rewrites {
		improved[rw.Original] = rw.Improved
	}

	b.WriteString("PROFESSIONAL EXPERIENCE\n")
	for _, job := range jobs {
		b.WriteString(job.Header)
		b.WriteString("\n")
		for _, bullet := range job.Bullets {
			line := bullet
			if better, ok := improved[bullet]; ok {
				line = better
			}
			b.WriteString("• ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}
