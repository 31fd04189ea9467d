package resume

import (
	"fmt"

	"vitaforge/pkg/models"
)

// Identifier prefixes per list, matching the deterministic scheme
// exp-1, exp-2, ... in source order.
const (
	expIDPrefix   = "exp"
	eduIDPrefix   = "edu"
	certIDPrefix  = "cert"
	skillIDPrefix = "skill"
	projIDPrefix  = "proj"
	archIDPrefix  = "arch-proj"
)

func generateID(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index+1)
}

// documentFromWire converts parsed model output into a normalized
// document: missing fields become empty values, every list item gets a
// fresh deterministic identifier, and a lone description string has
// already been coerced into a single-element list by the wire types.
// Never fails: incomplete-but-valid JSON is a defaulting problem, not an
// error.
func documentFromWire(w *wireDocument) *models.ResumeDocument {
	doc := &models.ResumeDocument{
		PersonalInfo: models.PersonalInfo{
			Name:     w.PersonalInfo.Name,
			Email:    w.PersonalInfo.Email,
			Phone:    w.PersonalInfo.Phone,
			Website:  w.PersonalInfo.Website,
			Location: w.PersonalInfo.Location,
			Summary:  w.PersonalInfo.Summary,
		},
		Experience:               make([]models.ExperienceEntry, len(w.Experience)),
		Education:                make([]models.EducationEntry, len(w.Education)),
		Certifications:           make([]models.Certification, len(w.Certs)),
		Skills:                   make([]models.Skill, len(w.Skills)),
		Projects:                 make([]models.Project, len(w.Projects)),
		KeyArchitecturalProjects: make([]models.Project, len(w.ArchProjects)),
	}

	for i, exp := range w.Experience {
		description := []string(exp.Description)
		if description == nil {
			description = []string{}
		}
		doc.Experience[i] = models.ExperienceEntry{
			ID:          generateID(expIDPrefix, i),
			JobTitle:    exp.JobTitle,
			Company:     exp.Company,
			Location:    exp.Location,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Description: description,
			KeyTech:     exp.KeyTech,
		}
	}

	for i, edu := range w.Education {
		doc.Education[i] = models.EducationEntry{
			ID:          generateID(eduIDPrefix, i),
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Location:    edu.Location,
			GradDate:    edu.GradDate,
		}
	}

	for i, cert := range w.Certs {
		doc.Certifications[i] = models.Certification{
			ID:   generateID(certIDPrefix, i),
			Name: cert.Name,
		}
	}

	for i, skill := range w.Skills {
		doc.Skills[i] = models.Skill{
			ID:    generateID(skillIDPrefix, i),
			Name:  skill.Name,
			Years: int(skill.Years),
		}
	}

	for i, proj := range w.Projects {
		doc.Projects[i] = models.Project{
			ID:          generateID(projIDPrefix, i),
			Name:        proj.Name,
			Description: proj.Description,
			Link:        proj.Link,
		}
	}

	for i, proj := range w.ArchProjects {
		doc.KeyArchitecturalProjects[i] = models.Project{
			ID:          generateID(archIDPrefix, i),
			Name:        proj.Name,
			Description: proj.Description,
			Link:        proj.Link,
		}
	}

	return doc
}

// mergeWithSnapshot applies the loss-guard to a revised document.
//
// Scalar personal-info fields fall back to the snapshot value when the
// model returned an empty string. List fields are all-or-nothing: a list
// the model emptied while the snapshot had entries is restored wholesale
// from the snapshot; no item-level merge is attempted.
//
// Identifiers are restored positionally from the snapshot so no revision
// ever reassigns an id; entries the model appended beyond the snapshot
// keep their generated ids, which continue the same scheme.
func mergeWithSnapshot(revised, snapshot *models.ResumeDocument) *models.ResumeDocument {
	out := revised.Clone()

	fallback := func(value, prior string) string {
		if value == "" {
			return prior
		}
		return value
	}

	out.PersonalInfo.Name = fallback(out.PersonalInfo.Name, snapshot.PersonalInfo.Name)
	out.PersonalInfo.Email = fallback(out.PersonalInfo.Email, snapshot.PersonalInfo.Email)
	out.PersonalInfo.Phone = fallback(out.PersonalInfo.Phone, snapshot.PersonalInfo.Phone)
	out.PersonalInfo.Website = fallback(out.PersonalInfo.Website, snapshot.PersonalInfo.Website)
	out.PersonalInfo.Location = fallback(out.PersonalInfo.Location, snapshot.PersonalInfo.Location)
	out.PersonalInfo.Summary = fallback(out.PersonalInfo.Summary, snapshot.PersonalInfo.Summary)

	if len(out.Experience) == 0 && len(snapshot.Experience) > 0 {
		out.Experience = snapshot.Clone().Experience
	} else {
		for i := range out.Experience {
			if i < len(snapshot.Experience) {
				out.Experience[i].ID = snapshot.Experience[i].ID
			}
		}
	}

	if len(out.Education) == 0 && len(snapshot.Education) > 0 {
		out.Education = append([]models.EducationEntry(nil), snapshot.Education...)
	} else {
		for i := range out.Education {
			if i < len(snapshot.Education) {
				out.Education[i].ID = snapshot.Education[i].ID
			}
		}
	}

	if len(out.Certifications) == 0 && len(snapshot.Certifications) > 0 {
		out.Certifications = append([]models.Certification(nil), snapshot.Certifications...)
	} else {
		for i := range out.Certifications {
			if i < len(snapshot.Certifications) {
				out.Certifications[i].ID = snapshot.Certifications[i].ID
			}
		}
	}

	if len(out.Skills) == 0 && len(snapshot.Skills) > 0 {
		out.Skills = append([]models.Skill(nil), snapshot.Skills...)
	} else {
		for i := range out.Skills {
			if i < len(snapshot.Skills) {
				out.Skills[i].ID = snapshot.Skills[i].ID
			}
		}
	}

	if len(out.Projects) == 0 && len(snapshot.Projects) > 0 {
		out.Projects = append([]models.Project(nil), snapshot.Projects...)
	} else {
		for i := range out.Projects {
			if i < len(snapshot.Projects) {
				out.Projects[i].ID = snapshot.Projects[i].ID
			}
		}
	}

	if len(out.KeyArchitecturalProjects) == 0 && len(snapshot.KeyArchitecturalProjects) > 0 {
		out.KeyArchitecturalProjects = append([]models.Project(nil), snapshot.KeyArchitecturalProjects...)
	} else {
		for i := range out.KeyArchitecturalProjects {
			if i < len(snapshot.KeyArchitecturalProjects) {
				out.KeyArchitecturalProjects[i].ID = snapshot.KeyArchitecturalProjects[i].ID
			}
		}
	}

	return out
}
