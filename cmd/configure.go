package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetwatch/sheetwatch-cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored defaults",
	Long: `Store the sheet URL, API key, and webhook URL locally so they
don't have to be passed on every run. Flags and environment variables
always take precedence over stored values.`,
}

var (
	setSheetURL   string
	setAPIKey     string
	setWebhookURL string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save default values",
	Long: `Save one or more defaults to the config file.

Examples:
  sheetwatch config set --sheet-url https://docs.google.com/spreadsheets/d/...
  sheetwatch config set --api-key AIza... --webhook-url https://discord.com/api/webhooks/...`,
	Args: cobra.NoArgs,
	RunE: runConfigSet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigClear,
}

func init() {
	configSetCmd.Flags().StringVar(&setSheetURL, "sheet-url", "", "Default spreadsheet sharing URL or ID")
	configSetCmd.Flags().StringVar(&setAPIKey, "api-key", "", "Default Sheets API key")
	configSetCmd.Flags().StringVar(&setWebhookURL, "webhook-url", "", "Default Discord webhook URL")
	configCmd.AddCommand(configSetCmd, configShowCmd, configClearCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if setSheetURL == "" && setAPIKey == "" && setWebhookURL == "" {
		return fmt.Errorf("nothing to set: pass --sheet-url, --api-key, or --webhook-url")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if setSheetURL != "" {
		cfg.SheetURL = setSheetURL
	}
	if setAPIKey != "" {
		cfg.APIKey = setAPIKey
	}
	if setWebhookURL != "" {
		cfg.WebhookURL = setWebhookURL
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "✓ Config saved")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// The API key is a credential: show only whether it is set.
	masked := struct {
		SheetURL   string `json:"sheet_url,omitempty"`
		APIKeySet  bool   `json:"api_key_set"`
		WebhookURL string `json:"webhook_url,omitempty"`
	}{cfg.SheetURL, cfg.APIKey != "", cfg.WebhookURL}
	return jsonPrint(masked)
}

func runConfigClear(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := config.Delete(); err != nil {
		return fmt.Errorf("deleting config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "✓ Config cleared")
	return nil
}
