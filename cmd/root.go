package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sheetwatch/sheetwatch-cli/config"
	"github.com/sheetwatch/sheetwatch-cli/sheets"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	sheetURL   string
	apiKey     string
	webhookURL string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:           "sheetwatch",
	Short:         "sheetwatch — report a shared sheet's question column to Discord",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(loadDotEnv)
	rootCmd.PersistentFlags().StringVar(&sheetURL, "sheet-url", "", "Spreadsheet sharing URL or bare ID (env: SHEETWATCH_SHEET_URL)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Sheets API key (env: SHEETWATCH_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&webhookURL, "webhook-url", "", "Discord webhook URL, optional (env: SHEETWATCH_WEBHOOK_URL)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory for run records (env: SHEETWATCH_OUTPUT_DIR, default \"output\")")
}

// loadDotEnv picks up a .env file in the working directory; a missing file
// is the normal case.
func loadDotEnv() {
	_ = godotenv.Load()
}

func resolveSheetURL() (string, error) {
	if sheetURL != "" {
		return sheetURL, nil
	}
	if v := os.Getenv("SHEETWATCH_SHEET_URL"); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if cfg.SheetURL == "" {
		return "", fmt.Errorf("no sheet URL: pass --sheet-url, set SHEETWATCH_SHEET_URL, or run 'sheetwatch config set --sheet-url ...'")
	}
	return cfg.SheetURL, nil
}

func resolveAPIKey() (string, error) {
	if apiKey != "" {
		return apiKey, nil
	}
	if v := os.Getenv("SHEETWATCH_API_KEY"); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if cfg.APIKey == "" {
		return "", fmt.Errorf("no API key: pass --api-key, set SHEETWATCH_API_KEY, or run 'sheetwatch config set --api-key ...'")
	}
	return cfg.APIKey, nil
}

// resolveWebhookURL returns "" when no webhook is configured anywhere;
// notification is optional.
func resolveWebhookURL() string {
	if webhookURL != "" {
		return webhookURL
	}
	if v := os.Getenv("SHEETWATCH_WEBHOOK_URL"); v != "" {
		return v
	}
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.WebhookURL
}

func resolveOutputDir() string {
	if outputDir != "" {
		return outputDir
	}
	if v := os.Getenv("SHEETWATCH_OUTPUT_DIR"); v != "" {
		return v
	}
	return "output"
}

func resolveAPIURL() string {
	if v := os.Getenv("SHEETWATCH_API_URL"); v != "" {
		return v
	}
	return "https://sheets.googleapis.com"
}

func newSheetsClient(key string) *sheets.Client {
	c := sheets.New(resolveAPIURL(), key)
	c.UserAgent = "sheetwatch/" + Version
	return c
}

func Execute() error {
	return rootCmd.Execute()
}
