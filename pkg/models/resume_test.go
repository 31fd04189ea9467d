package models

import "testing"

func TestResumeDocumentClone(t *testing.T) {
	doc := &ResumeDocument{
		PersonalInfo: PersonalInfo{Name: "Jane Doe"},
		Experience: []ExperienceEntry{
			{ID: "exp-1", JobTitle: "Engineer", Description: []string{"built APIs"}},
		},
		Skills: []Skill{{ID: "skill-1", Name: "Go", Years: 6}},
	}

	clone := doc.Clone()

	clone.PersonalInfo.Name = "Changed"
	clone.Experience[0].Description[0] = "changed"
	clone.Skills[0].Name = "Rust"

	if doc.PersonalInfo.Name != "Jane Doe" {
		t.Error("clone shares personal info with original")
	}
	if doc.Experience[0].Description[0] != "built APIs" {
		t.Error("clone shares description backing array with original")
	}
	if doc.Skills[0].Name != "Go" {
		t.Error("clone shares skills with original")
	}
}

func TestResumeDocumentCloneNil(t *testing.T) {
	var doc *ResumeDocument
	if doc.Clone() != nil {
		t.Error("cloning nil must return nil")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(&ResumeDocument{}).IsEmpty() {
		t.Error("zero document must be empty")
	}
	if (&ResumeDocument{PersonalInfo: PersonalInfo{Name: "x"}}).IsEmpty() {
		t.Error("document with a name must not be empty")
	}
	var doc *ResumeDocument
	if !doc.IsEmpty() {
		t.Error("nil document must be empty")
	}
}

func TestIsStyleSlot(t *testing.T) {
	for _, slot := range StyleSlots {
		if !IsStyleSlot(slot) {
			t.Errorf("declared slot %q not recognized", slot)
		}
	}
	for _, bogus := range []string{"", "Header", "footer", "bodyText"} {
		if IsStyleSlot(bogus) {
			t.Errorf("unknown slot %q recognized", bogus)
		}
	}
}

func TestStyleOverridesClone(t *testing.T) {
	s := StyleOverrides{"header": "bg-white"}
	c := s.Clone()
	c["header"] = "bg-black"

	if s["header"] != "bg-white" {
		t.Error("clone shares backing map with original")
	}

	var nilOverrides StyleOverrides
	if nilOverrides.Clone() != nil {
		t.Error("cloning nil overrides must return nil")
	}
}
