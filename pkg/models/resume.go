package models

// PersonalInfo holds the scalar contact fields of a resume. An empty
// string always means "unknown"; no field is ever null on the wire.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// ExperienceEntry represents a single position. Description is an ordered
// list of bullet points; order is meaningful and must be preserved.
type ExperienceEntry struct {
	ID          string   `json:"id"`
	JobTitle    string   `json:"jobTitle"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
	KeyTech     string   `json:"keyTech,omitempty"`
}

// EducationEntry represents a degree or program.
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	GradDate    string `json:"gradDate"`
}

// Certification represents a named certification.
type Certification struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Skill represents a skill with optional years of experience.
// Years is never negative; 0 means unspecified.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Years int    `json:"years"`
}

// Project represents a personal or architectural project. Link may be a
// bare domain without a scheme.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// ResumeDocument is the root aggregate produced by extraction and
// replaced wholesale by revisions. Entity IDs are assigned once at
// extraction time and are never reassigned by a revision.
//
// Projects and KeyArchitecturalProjects are semantically distinct
// sections and are never merged.
type ResumeDocument struct {
	PersonalInfo             PersonalInfo      `json:"personalInfo"`
	Experience               []ExperienceEntry `json:"experience"`
	Education                []EducationEntry  `json:"education"`
	Certifications           []Certification   `json:"certifications"`
	Skills                   []Skill           `json:"skills"`
	Projects                 []Project         `json:"projects"`
	KeyArchitecturalProjects []Project         `json:"keyArchitecturalProjects"`
}

// Clone returns a deep copy of the document. Revisions snapshot the
// current document through Clone before any model call so a failed
// revision can fall back to untouched data.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}

	out := &ResumeDocument{
		PersonalInfo:             d.PersonalInfo,
		Experience:               make([]ExperienceEntry, len(d.Experience)),
		Education:                append([]EducationEntry(nil), d.Education...),
		Certifications:           append([]Certification(nil), d.Certifications...),
		Skills:                   append([]Skill(nil), d.Skills...),
		Projects:                 append([]Project(nil), d.Projects...),
		KeyArchitecturalProjects: append([]Project(nil), d.KeyArchitecturalProjects...),
	}

	for i, exp := range d.Experience {
		exp.Description = append([]string(nil), exp.Description...)
		out.Experience[i] = exp
	}

	return out
}

// IsEmpty reports whether the document carries no extracted content at all.
func (d *ResumeDocument) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.PersonalInfo == (PersonalInfo{}) &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Certifications) == 0 &&
		len(d.Skills) == 0 &&
		len(d.Projects) == 0 &&
		len(d.KeyArchitecturalProjects) == 0
}
