package sheets

import (
	"fmt"
	"strings"
)

// SpreadsheetIDFromURL extracts the spreadsheet ID from a sharing URL like
// https://docs.google.com/spreadsheets/d/<id>/edit#gid=0. A bare ID is
// accepted as-is.
func SpreadsheetIDFromURL(sheetURL string) (string, error) {
	s := strings.TrimSpace(sheetURL)
	if s == "" {
		return "", fmt.Errorf("empty sheet URL")
	}

	if _, rest, found := strings.Cut(s, "/spreadsheets/d/"); found {
		id, _, _ := strings.Cut(rest, "/")
		id, _, _ = strings.Cut(id, "?")
		id, _, _ = strings.Cut(id, "#")
		if id == "" {
			return "", fmt.Errorf("no spreadsheet ID in URL %q", sheetURL)
		}
		return id, nil
	}

	// Not a URL at all: treat as a raw spreadsheet ID.
	if !strings.Contains(s, "/") && !strings.Contains(s, ":") {
		return s, nil
	}
	return "", fmt.Errorf("not a spreadsheet URL: %q", sheetURL)
}
