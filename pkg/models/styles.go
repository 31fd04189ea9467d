package models

// StyleOverrides maps named visual slots of the rendered resume template
// to style-class strings. A missing slot falls back to the template
// default on the rendering side.
type StyleOverrides map[string]string

// StyleSlots is the closed vocabulary of style slots. The style-delta
// generator drops any key outside this set so downstream templates never
// see slots they do not know.
var StyleSlots = []string{
	"container",
	"header",
	"name",
	"contactInfo",
	"summary",
	"section",
	"sectionTitle",
	"itemHeader",
	"itemTitle",
	"itemSubtitle",
	"itemDate",
	"itemList",
	"listItem",
	"skillsList",
	"skillItem",
}

var styleSlotSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(StyleSlots))
	for _, slot := range StyleSlots {
		s[slot] = struct{}{}
	}
	return s
}()

// IsStyleSlot reports whether name is part of the fixed slot vocabulary.
func IsStyleSlot(name string) bool {
	_, ok := styleSlotSet[name]
	return ok
}

// Clone returns a copy of the overrides map.
func (s StyleOverrides) Clone() StyleOverrides {
	if s == nil {
		return nil
	}
	out := make(StyleOverrides, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
