package resume

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"vitaforge/pkg/models"
)

// sectionAliases maps canonical resume sections to the vendor-specific
// headings seen in the wild. The table is embedded in the extraction
// prompt so the model folds synonymous headings into the fixed schema.
// A heading missing here is a silent miss, never a crash.
var sectionAliases = map[string][]string{
	"summary": {
		"summary", "professional summary", "profile", "about me", "about",
		"objective", "career objective", "career summary", "overview",
		"executive summary", "personal statement",
	},
	"experience": {
		"experience", "work experience", "work history", "employment",
		"employment history", "professional experience", "career history",
		"relevant experience", "professional background", "positions held",
	},
	"education": {
		"education", "academic background", "academic history", "academics",
		"qualifications", "education & training", "degrees",
	},
	"certifications": {
		"certifications", "certificates", "licenses", "licenses & certifications",
		"certifications & licenses", "professional certifications", "credentials",
	},
	"skills": {
		"skills", "technical skills", "core competencies", "competencies",
		"technologies", "technical expertise", "expertise", "tools",
		"tools & technologies", "areas of expertise", "proficiencies",
	},
	"projects": {
		"projects", "personal projects", "side projects", "selected projects",
		"notable projects", "portfolio",
	},
	"keyArchitecturalProjects": {
		"key architectural projects", "architectural projects",
		"architecture projects", "key projects", "major projects",
	},
}

// canonicalSection resolves a section heading to its canonical schema
// field. Pure lookup; unknown headings return ok=false.
func canonicalSection(heading string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(heading))
	for canonical, aliases := range sectionAliases {
		for _, alias := range aliases {
			if alias == needle {
				return canonical, true
			}
		}
	}
	return "", false
}

// aliasTableText renders the alias table for prompt embedding, in a
// stable order so identical input produces an identical prompt.
func aliasTableText() string {
	canonicals := make([]string, 0, len(sectionAliases))
	for c := range sectionAliases {
		canonicals = append(canonicals, c)
	}
	sort.Strings(canonicals)

	var b strings.Builder
	for _, c := range canonicals {
		fmt.Fprintf(&b, "- %s: %s\n", c, strings.Join(sectionAliases[c], ", "))
	}
	return b.String()
}

// resumeShapeJSON is the fixed target shape embedded in the extraction
// and revision prompts.
const resumeShapeJSON = `{
  "personalInfo": {
    "name": "Full Name",
    "email": "email@example.com",
    "phone": "+1234567890",
    "website": "https://website.com",
    "location": "City, State",
    "summary": "Professional summary or objective"
  },
  "experience": [
    {
      "jobTitle": "Job Title",
      "company": "Company Name",
      "location": "City, State",
      "startDate": "Jan 2020",
      "endDate": "Present",
      "description": [
        "Achievement or responsibility bullet point 1",
        "Achievement or responsibility bullet point 2"
      ],
      "keyTech": "Technologies used (optional)"
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "institution": "University Name",
      "location": "City, State",
      "gradDate": "May 2020"
    }
  ],
  "certifications": [
    { "name": "Certification Name" }
  ],
  "skills": [
    { "name": "Skill Name", "years": 5 }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "Project description",
      "link": "https://project-link.com"
    }
  ],
  "keyArchitecturalProjects": []
}`

// buildExtractionPrompt embeds the target shape and the section alias
// table around the raw resume text.
func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(`You are a resume parser. Parse the resume text below and extract structured data. Return ONLY valid JSON with this exact structure:

%s

Resume sections may use non-standard headings. Normalize them using this table (heading -> target field):
%s
IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. description must be an array of strings (one bullet point per entry, in source order)
3. years must be a number (0 if unknown), never negative
4. If a field is missing, use empty string "" for strings and [] for arrays
5. Do not add id fields - they are assigned automatically
6. Keep "projects" and "keyArchitecturalProjects" separate; never merge them

RESUME TEXT:
%s`, resumeShapeJSON, aliasTableText(), text)
}

// buildRevisionPrompt scopes allowed edits to prose and forbids
// structural changes. The current document is embedded as JSON.
func buildRevisionPrompt(doc *models.ResumeDocument, instruction string) string {
	current, _ := json.MarshalIndent(doc, "", "  ")

	return fmt.Sprintf(`You are an expert resume writer. Improve this resume data based on the requested improvements.

CURRENT RESUME DATA:
%s

REQUESTED IMPROVEMENTS:
%s

INSTRUCTIONS:
1. Improve the professional summary (personalInfo.summary) and the experience bullet points
2. Use action verbs and quantifiable results
3. Keep the exact same JSON structure - do not change field names or types
4. Preserve all id values exactly as they are
5. Do not add, remove, or reorder sections or entries
6. description must remain an array of strings

Return ONLY valid JSON with the improved content.`, current, instruction)
}

// buildStylePrompt asks for the complete slot mapping so unrelated slots
// are echoed back rather than dropped.
func buildStylePrompt(current models.StyleOverrides, instruction string) string {
	currentJSON, _ := json.MarshalIndent(current, "", "  ")

	return fmt.Sprintf(`Generate style class names for a resume template based on these preferences: %s

CURRENT STYLES:
%s

The full set of style slots is: %s.

Return ONLY valid JSON mapping slot names to class strings. Include every slot from the current styles; only replace classes that conflict with the preferences, and keep unrelated slots unchanged.`, instruction, currentJSON, strings.Join(models.StyleSlots, ", "))
}
