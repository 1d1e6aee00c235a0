package sheets

import "testing"

func TestSpreadsheetIDFromURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://docs.google.com/spreadsheets/d/1AbC_dEf-123/edit#gid=0", "1AbC_dEf-123", false},
		{"https://docs.google.com/spreadsheets/d/1AbC_dEf-123/", "1AbC_dEf-123", false},
		{"https://docs.google.com/spreadsheets/d/1AbC_dEf-123", "1AbC_dEf-123", false},
		{"https://docs.google.com/spreadsheets/d/1AbC?usp=sharing", "1AbC", false},
		{"1AbC_dEf-123", "1AbC_dEf-123", false},
		{"", "", true},
		{"https://docs.google.com/spreadsheets/d/", "", true},
		{"https://example.com/not-a-sheet", "", true},
	}
	for _, tt := range tests {
		got, err := SpreadsheetIDFromURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("SpreadsheetIDFromURL(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("SpreadsheetIDFromURL(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SpreadsheetIDFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
