package resume

import "strings"

// extractJSONObject recovers the first top-level JSON object from raw
// model output by locating the first '{' and the last '}'. Models
// routinely wrap the object in prose or markdown fences; both fall away
// under this scan. ok is false when no brace pair exists.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
