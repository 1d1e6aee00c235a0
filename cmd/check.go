package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sheetwatch/sheetwatch-cli/discord"
	"github.com/sheetwatch/sheetwatch-cli/internal"
	"github.com/sheetwatch/sheetwatch-cli/questions"
	"github.com/sheetwatch/sheetwatch-cli/sheets"
	"github.com/sheetwatch/sheetwatch-cli/store"
)

var (
	checkTab    string
	checkColumn string
	checkJSON   bool
)

// scanCols is how many columns of the tab are fetched (A through Z, like
// the sharing UI shows by default).
const scanCols = 26

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the questions tab and report the done/todo split",
	Long: `Fetch the questions tab, detect which entries are crossed out
(strikethrough formatting, with manual markers like [DONE] or ~~text~~
as fallback), and report the done/todo split.

What happens:
  1. Cell values and formatting are fetched for the tab.
  2. Each non-empty entry of the target column is classified.
  3. The full result and a summary are written to the output directory,
     and the run is recorded in the local history database.
  4. If a webhook URL is configured, a Discord notification is sent.

A sheet-side problem (missing tab, missing column, empty data) is
reported in the records and the notification; the command still exits 0.

Examples:
  sheetwatch check
  sheetwatch check --tab Questions --column Group4
  sheetwatch check --json > result.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkTab, "tab", "Questions", "Tab (sheet) name to inspect")
	checkCmd.Flags().StringVar(&checkColumn, "column", "Group4", "Header fragment identifying the target column")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the full result as JSON to stdout")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rawURL, err := resolveSheetURL()
	if err != nil {
		return err
	}
	key, err := resolveAPIKey()
	if err != nil {
		return err
	}
	spreadsheetID, err := sheets.SpreadsheetIDFromURL(rawURL)
	if err != nil {
		return err
	}

	c := newSheetsClient(key)
	result := fetchAndExtract(c, spreadsheetID, checkTab, checkColumn)
	result.SheetURL = rawURL

	outDir := resolveOutputDir()
	w := store.Writer{Dir: outDir}
	if err := w.WriteResult(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	summary := store.NewSummary(result)
	if hook := resolveWebhookURL(); hook != "" {
		sent := notify(hook, result)
		summary.NotificationSent = &sent
	}
	if err := w.WriteSummary(summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	recordHistory(filepath.Join(outDir, "history.db"), summary)

	if checkJSON {
		if err := jsonPrint(result); err != nil {
			return err
		}
	}
	printRunSummary(result, outDir)

	// A sheet-side error is a completed run: records are written and the
	// notification (if any) carries the message. Only config/IO failures
	// exit non-zero.
	return nil
}

// fetchAndExtract pulls values and the formatting document, then runs the
// extraction. Any fetch failure becomes an error-status result.
func fetchAndExtract(c *sheets.Client, spreadsheetID, tab, column string) questions.Result {
	a1Range := internal.ColumnRange(tab, 1, scanCols)

	values, err := c.Values(spreadsheetID, a1Range)
	if err != nil {
		return questions.ErrorResult(fmt.Sprintf("error accessing sheet: %v", err))
	}

	doc, err := c.Grid(spreadsheetID, a1Range)
	if err != nil {
		return questions.ErrorResult(fmt.Sprintf("error accessing sheet formatting: %v", err))
	}

	return questions.Extract(values.Values, doc, tab, column)
}

// notify sends the composed message, reporting (not failing on) delivery
// problems.
func notify(hook string, result questions.Result) bool {
	msg := discord.Compose(result)
	if err := discord.NewClient(hook).Send(msg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not send notification: %v\n", err)
		return false
	}
	fmt.Fprintf(os.Stderr, "Sent %d embed(s) to the webhook\n", len(msg.Embeds))
	return true
}

// recordHistory appends the run to the local history database; history is
// best effort and never fails the run.
func recordHistory(path string, summary store.Summary) {
	h, err := store.OpenHistory(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer h.Close()
	if err := h.Record(summary); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
}

func printRunSummary(r questions.Result, outDir string) {
	if r.Status == questions.StatusSuccess {
		fmt.Fprintf(os.Stderr, "%s: %d question(s), %d done, %d todo\n",
			r.Status, r.TotalQuestions, r.DoneCount, r.TodoCount)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", r.Status, r.Message)
	}
	fmt.Fprintf(os.Stderr, "Records written to %s\n", outDir)
}
