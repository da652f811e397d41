package resume

// ContactInfo carries the candidate identity extracted from the top of a
// resume. Exposure of these fields to recruiters is gated upstream.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Experience is one job entry: a header line (role, employer, dates) and its
// bullet points.
type Experience struct {
	Header  string   `json:"header"`
	Bullets []string `json:"bullets"`
}

// Document is the structured form of an uploaded resume. It is built once per
// analysis request and never mutated afterwards.
type Document struct {
	ContactInfo      ContactInfo  `json:"contact_info"`
	Summary          string       `json:"summary"`
	Skills           []string     `json:"skills"`
	Experience       []Experience `json:"experience"`
	Projects         []Experience `json:"projects"`
	Education        []string     `json:"education"`
	Certifications   []string     `json:"certifications"`
	Keywords         []string     `json:"keywords"`
	FormattingIssues []string     `json:"formatting_issues"`
}
