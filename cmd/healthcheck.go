package cmd

import (
	"fmt"

	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check local storage and configuration",
	Long:  `Verify the data directory, database, config file, and API credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.ResolveDataPaths(dataDir)
		if err != nil {
			return err
		}

		fmt.Printf("Data directory: %s\n", paths.DataDir)

		if paths.DBExists() {
			fmt.Printf("  [ok] database present: %s\n", paths.DBPath)
		} else {
			fmt.Printf("  [--] no database yet (created on first use): %s\n", paths.DBPath)
		}

		if paths.ConfigExists() {
			fmt.Printf("  [ok] config present: %s\n", paths.ConfigPath)
		} else {
			fmt.Printf("  [--] no config file (defaults + environment apply): %s\n", paths.ConfigPath)
		}

		cfg, err := internal.LoadConfig(paths.ConfigPath)
		if err != nil {
			fmt.Printf("  [!!] config unreadable: %v\n", err)
			return err
		}

		if cfg.DeepSeek.APIKey != "" {
			fmt.Println("  [ok] DeepSeek API key configured")
		} else {
			fmt.Printf("  [!!] DeepSeek API key missing (set %s or deepseek.api_key)\n", internal.EnvDeepSeekAPIKey)
		}

		if cfg.Supabase.URL != "" {
			fmt.Printf("  [ok] catalog backend configured: %s\n", cfg.Supabase.URL)
		} else {
			fmt.Println("  [--] no catalog backend configured; bundled sample data will be used")
		}

		if paths.DBExists() {
			db, err := internal.OpenDatabase(paths.DBPath)
			if err != nil {
				fmt.Printf("  [!!] database unreadable: %v\n", err)
				return err
			}
			defer db.Close()

			blobs := internal.NewBlobStore(db)
			auth := internal.NewAuthService(blobs, nil, cfg)
			if user, ok := auth.CurrentUser(); ok {
				fmt.Printf("  [ok] logged in as %s (%d diamonds)\n", user.Username, user.Diamonds)
			} else {
				fmt.Println("  [--] not logged in")
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
