package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sheetwatch/sheetwatch-cli/store"
)

var (
	historyCount int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent check runs",
	Long: `Show the most recent runs recorded in the local history database.

Examples:
  sheetwatch history
  sheetwatch history -n 5
  sheetwatch history --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output raw JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := filepath.Join(resolveOutputDir(), "history.db")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no history recorded yet (looked for %s)", path)
	}

	h, err := store.OpenHistory(path)
	if err != nil {
		return err
	}
	defer h.Close()

	runs, err := h.Recent(historyCount)
	if err != nil {
		return err
	}

	if historyJSON {
		return jsonPrint(runs)
	}

	if len(runs) == 0 {
		fmt.Println("(no runs)")
		return nil
	}
	for _, r := range runs {
		notified := "-"
		if r.NotificationSent != nil {
			if *r.NotificationSent {
				notified = "sent"
			} else {
				notified = "failed"
			}
		}
		fmt.Printf("%s  %-7s  total=%d done=%d todo=%d  notification=%s\n",
			r.RanAt, r.Status, r.TotalQuestions, r.DoneCount, r.TodoCount, notified)
	}
	return nil
}
