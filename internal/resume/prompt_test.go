package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vitaforge/pkg/models"
)

func TestCanonicalSection(t *testing.T) {
	tests := []struct {
		heading string
		want    string
		wantOK  bool
	}{
		{"Experience", "experience", true},
		{"WORK HISTORY", "experience", true},
		{"  Professional Experience  ", "experience", true},
		{"About Me", "summary", true},
		{"Licenses & Certifications", "certifications", true},
		{"Tools & Technologies", "skills", true},
		{"Key Projects", "keyArchitecturalProjects", true},
		{"Hobbies", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := canonicalSection(tt.heading)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("canonicalSection(%q) = (%q, %v), want (%q, %v)", tt.heading, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAliasTableTextIsStable(t *testing.T) {
	first := aliasTableText()
	for i := 0; i < 10; i++ {
		if aliasTableText() != first {
			t.Fatal("alias table rendering is not deterministic")
		}
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := buildExtractionPrompt("Jane Doe\njane@example.com\nEXPERIENCE\nEngineer at Acme")

	assert.Contains(t, prompt, `"personalInfo"`)
	assert.Contains(t, prompt, `"keyArchitecturalProjects"`)
	assert.Contains(t, prompt, "work history")
	assert.Contains(t, prompt, "Engineer at Acme")
	assert.Contains(t, prompt, "Do not add id fields")
}

func TestBuildRevisionPromptPreservesIDs(t *testing.T) {
	doc := sampleDocument()
	prompt := buildRevisionPrompt(doc, "make it punchier")

	assert.Contains(t, prompt, `"exp-1"`)
	assert.Contains(t, prompt, "make it punchier")
	assert.Contains(t, prompt, "Preserve all id values")
}

func TestBuildStylePromptListsEverySlot(t *testing.T) {
	prompt := buildStylePrompt(models.StyleOverrides{"header": "bg-white"}, "dark mode")

	for _, slot := range models.StyleSlots {
		if !strings.Contains(prompt, slot) {
			t.Errorf("style prompt missing slot %q", slot)
		}
	}
	assert.Contains(t, prompt, "dark mode")
	assert.Contains(t, prompt, "bg-white")
}
