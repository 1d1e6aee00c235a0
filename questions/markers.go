package questions

import "strings"

// completionMarkers is the vocabulary of manual "done" conventions people
// type into cells when they don't use real strikethrough formatting.
var completionMarkers = []string{
	"[DONE]", "[COMPLETED]", "[FINISHED]", "[COMPLETE]",
	"✓", "✗", "DONE:", "COMPLETED:", "FINISHED:",
	"(DONE)", "(COMPLETED)", "(FINISHED)",
	"- DONE", "- COMPLETED", "- FINISHED",
}

// HasManualMarker reports whether the text contains a manual completion
// convention: one of the marker substrings (case-insensitive), or at least
// two markdown-style `~~` strikethrough delimiters.
func HasManualMarker(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	upper := strings.TrimSpace(strings.ToUpper(text))
	for _, marker := range completionMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}

	return strings.Count(text, "~~") >= 2
}
