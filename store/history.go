package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	ran_at            TEXT    NOT NULL,
	status            TEXT    NOT NULL,
	total_questions   INTEGER NOT NULL,
	done_count        INTEGER NOT NULL,
	todo_count        INTEGER NOT NULL,
	has_new_questions INTEGER NOT NULL,
	notification_sent INTEGER
);`

// Run is one recorded invocation.
type Run struct {
	ID               int64  `db:"id" json:"id"`
	RanAt            string `db:"ran_at" json:"ran_at"`
	Status           string `db:"status" json:"status"`
	TotalQuestions   int    `db:"total_questions" json:"total_questions"`
	DoneCount        int    `db:"done_count" json:"done_count"`
	TodoCount        int    `db:"todo_count" json:"todo_count"`
	HasNewQuestions  bool   `db:"has_new_questions" json:"has_new_questions"`
	NotificationSent *bool  `db:"notification_sent" json:"notification_sent,omitempty"`
}

// History records run summaries in a local SQLite database.
type History struct {
	db *sqlx.DB
}

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}

// Record inserts one run summary.
func (h *History) Record(s Summary) error {
	_, err := h.db.NamedExec(`
		INSERT INTO runs (ran_at, status, total_questions, done_count, todo_count, has_new_questions, notification_sent)
		VALUES (:ran_at, :status, :total_questions, :done_count, :todo_count, :has_new_questions, :notification_sent)`,
		Run{
			RanAt:            s.Timestamp,
			Status:           s.Status,
			TotalQuestions:   s.TotalQuestions,
			DoneCount:        s.DoneCount,
			TodoCount:        s.TodoCount,
			HasNewQuestions:  s.HasNewQuestions,
			NotificationSent: s.NotificationSent,
		})
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the latest n runs, newest first.
func (h *History) Recent(n int) ([]Run, error) {
	if n <= 0 {
		n = 10
	}
	runs := []Run{}
	if err := h.db.Select(&runs, `SELECT * FROM runs ORDER BY id DESC LIMIT ?`, n); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
