package questions

import (
	"fmt"
	"strings"
	"time"

	"github.com/sheetwatch/sheetwatch-cli/sheets"
)

// Completion-detection provenance: which path decided a question's state.
const (
	SourceFormatting = "api_formatting"
	SourceManual     = "manual_indicators"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Question is one non-empty entry of the target column.
type Question struct {
	RowNumber        int    `json:"row_number"` // 1-indexed grid position
	Text             string `json:"text"`
	IsCrossedOut     bool   `json:"is_crossed_out"`
	FormattingSource string `json:"formatting_source"`
}

// Result is the aggregate outcome of one extraction run. It is built once
// and not mutated afterward, except for SheetURL which the caller may set
// before persisting.
type Result struct {
	Status          string     `json:"status"`
	Message         string     `json:"message,omitempty"`
	Timestamp       string     `json:"timestamp"`
	SheetURL        string     `json:"sheet_url,omitempty"`
	Column          string     `json:"column,omitempty"`
	ColumnIndex     int        `json:"column_index,omitempty"` // 1-indexed for display
	TotalQuestions  int        `json:"total_questions"`
	DoneCount       int        `json:"done_count"`
	TodoCount       int        `json:"todo_count"`
	HasNewQuestions bool       `json:"has_new_questions"`
	DoneQuestions   []Question `json:"done_questions"`
	TodoQuestions   []Question `json:"todo_questions"`
	AllQuestions    []Question `json:"all_questions,omitempty"`
}

// ErrorResult builds a well-formed error-status result: empty lists, zero
// counts, and a human-readable message.
func ErrorResult(message string) Result {
	return Result{
		Status:        StatusError,
		Message:       message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		DoneQuestions: []Question{},
		TodoQuestions: []Question{},
	}
}

// Extract walks the value grid for the named tab, classifies every non-empty
// entry of the first column whose header contains fragment, and partitions
// the entries into done and todo.
//
// Real strikethrough formatting wins; the manual-marker vocabulary is only
// consulted when the formatting document has no signal for the cell. The
// formatting document may be nil or partial — that just means no cell has a
// formatting signal.
func Extract(values [][]string, doc *sheets.Spreadsheet, sheetName, fragment string) Result {
	if len(values) == 0 {
		return ErrorResult(fmt.Sprintf("no data found in %s sheet", sheetName))
	}

	colIndex := -1
	for i, header := range values[0] {
		if strings.Contains(header, fragment) {
			colIndex = i
			break
		}
	}
	if colIndex < 0 {
		return ErrorResult(fmt.Sprintf("no header containing %q found in %s sheet", fragment, sheetName))
	}

	var all, done, todo []Question
	for rowIndex := 1; rowIndex < len(values); rowIndex++ {
		row := values[rowIndex]
		if colIndex >= len(row) {
			continue
		}
		text := strings.TrimSpace(row[colIndex])
		if text == "" {
			continue
		}

		// One formatting evaluation serves both the decision and the
		// provenance tag; manual markers are the fallback only.
		crossed := HasStrikethrough(doc, sheetName, rowIndex, colIndex)
		source := SourceFormatting
		if !crossed {
			crossed = HasManualMarker(text)
			source = SourceManual
		}

		q := Question{
			RowNumber:        rowIndex + 1,
			Text:             text,
			IsCrossedOut:     crossed,
			FormattingSource: source,
		}
		all = append(all, q)
		if crossed {
			done = append(done, q)
		} else {
			todo = append(todo, q)
		}
	}

	if done == nil {
		done = []Question{}
	}
	if todo == nil {
		todo = []Question{}
	}

	return Result{
		Status:          StatusSuccess,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Column:          fragment,
		ColumnIndex:     colIndex + 1,
		TotalQuestions:  len(all),
		DoneCount:       len(done),
		TodoCount:       len(todo),
		HasNewQuestions: len(todo) > 0, // literal: unfinished items exist, no prior-run diffing
		DoneQuestions:   done,
		TodoQuestions:   todo,
		AllQuestions:    all,
	}
}
