package questions

import "testing"

func TestHasManualMarker_Vocabulary(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"[DONE] ship the report", true},
		{"[done] ship the report", true}, // case-insensitive
		{"ship the report [COMPLETED]", true},
		{"[FINISHED] retro notes", true},
		{"[COMPLETE] budget review", true},
		{"✓ reviewed by legal", true},
		{"✗ cancelled", true},
		{"DONE: handed off", true},
		{"done: handed off", true},
		{"COMPLETED: merged", true},
		{"FINISHED: shipped", true},
		{"(DONE) archived", true},
		{"(COMPLETED) archived", true},
		{"(FINISHED) archived", true},
		{"- DONE follow up", true},
		{"- COMPLETED follow up", true},
		{"- FINISHED follow up", true},
		{"what is the deadline?", false},
		{"is it done yet?", false},         // bare word, no convention
		{"abandoned: old question", false}, // not in the vocabulary
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := HasManualMarker(tt.text); got != tt.want {
			t.Errorf("HasManualMarker(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHasManualMarker_MarkdownStrikethrough(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"~~all sorted~~", true},
		{"prefix ~~sorted~~ suffix", true},
		{"~~one delimiter only", false},
		{"approx ~ tilde ~ spaced", false},
		{"~~~~", true}, // two delimiters back to back
	}
	for _, tt := range tests {
		if got := HasManualMarker(tt.text); got != tt.want {
			t.Errorf("HasManualMarker(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
