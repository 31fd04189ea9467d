package resume

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The wire types tolerate the shape drift LLMs produce: a bare string
// where an array belongs, a quoted number, a null. Coercion happens here
// at the parse boundary so the rest of the system sees only well-typed
// documents.

// flexStringList accepts either a JSON array of strings or a bare
// string, which becomes a single-element list.
type flexStringList []string

func (l *flexStringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				// Non-string array entry: keep its raw text rather
				// than losing the bullet.
				s = strings.Trim(string(item), `"`)
			}
			out = append(out, s)
		}
		*l = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = []string{s}
	return nil
}

// flexInt accepts a JSON number, a numeric string, or null. Anything
// unparseable or negative resolves to 0 ("unspecified").
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*n = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = clampYears(int(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*n = clampYears(parsed)
			return nil
		}
	}

	*n = 0
	return nil
}

func clampYears(v int) flexInt {
	if v < 0 {
		return 0
	}
	return flexInt(v)
}

// wireDocument mirrors the model's JSON output for both extraction and
// revision responses. IDs are present for revision echoes but are never
// trusted; normalization assigns or restores them.
type wireDocument struct {
	PersonalInfo wirePersonalInfo `json:"personalInfo"`
	Experience   []wireExperience `json:"experience"`
	Education    []wireEducation  `json:"education"`
	Certs        []wireCert       `json:"certifications"`
	Skills       []wireSkill      `json:"skills"`
	Projects     []wireProject    `json:"projects"`
	ArchProjects []wireProject    `json:"keyArchitecturalProjects"`
}

type wirePersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

type wireExperience struct {
	JobTitle    string         `json:"jobTitle"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Description flexStringList `json:"description"`
	KeyTech     string         `json:"keyTech"`
}

type wireEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	GradDate    string `json:"gradDate"`
}

type wireCert struct {
	Name string `json:"name"`
}

type wireSkill struct {
	Name  string  `json:"name"`
	Years flexInt `json:"years"`
}

type wireProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
