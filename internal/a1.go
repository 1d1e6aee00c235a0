package internal

import "strings"

// ColLetter converts a 1-indexed column number to its A1 letter(s).
func ColLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// ColumnRange builds an unbounded-row A1 range like "Questions!A:Z" or
// "'My Tab'!A:Z" covering startCol through endCol (1-indexed).
func ColumnRange(sheet string, startCol, endCol int) string {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	return QuoteSheet(sheet) + "!" + ColLetter(startCol) + ":" + ColLetter(endCol)
}

// QuoteSheet wraps a sheet title in single quotes when A1 notation
// requires it (anything beyond plain letters, digits, and underscores).
// Embedded single quotes are doubled.
func QuoteSheet(sheet string) string {
	if !needsQuoting(sheet) {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func needsQuoting(sheet string) bool {
	if sheet == "" {
		return true
	}
	for _, r := range sheet {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return true
		}
	}
	return false
}
