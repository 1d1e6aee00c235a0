package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sheetwatch/sheetwatch-cli/questions"
)

// Writer persists run records as JSON files under Dir.
type Writer struct {
	Dir string
}

// Summary is the small per-run record kept alongside the full result.
type Summary struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	HasNewQuestions  bool   `json:"has_new_questions"`
	TodoCount        int    `json:"todo_count"`
	DoneCount        int    `json:"done_count"`
	TotalQuestions   int    `json:"total_questions"`
	NotificationSent *bool  `json:"notification_sent,omitempty"` // nil when no webhook configured
}

// NewSummary condenses a result into its summary record.
func NewSummary(r questions.Result) Summary {
	return Summary{
		Status:          r.Status,
		Timestamp:       r.Timestamp,
		HasNewQuestions: r.HasNewQuestions,
		TodoCount:       r.TodoCount,
		DoneCount:       r.DoneCount,
		TotalQuestions:  r.TotalQuestions,
	}
}

// WriteResult writes the full aggregate result to questions.json.
func (w Writer) WriteResult(r questions.Result) error {
	return w.writeJSON("questions.json", r)
}

// WriteSummary writes the run summary to summary.json.
func (w Writer) WriteSummary(s Summary) error {
	return w.writeJSON("summary.json", s)
}

// writeJSON writes atomically using a temp file + rename.
func (w Writer) writeJSON(name string, v any) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	p := filepath.Join(w.Dir, name)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	// Remove dest first for Windows compat (os.Rename fails if dest exists on Windows).
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
