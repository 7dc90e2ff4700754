package cmd

import (
	"fmt"
	"os"

	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aichat",
	Short: "Chat with AI characters and stories from your terminal",
	Long: `A command-line client for the AI character chat service.

Browse the hosted character and story catalog, start conversations, and
exchange messages with AI characters. Conversations and messages are stored
locally; catalog fetches are cached and fall back to bundled sample data when
the backend is unreachable.

Quick Start:
  aichat login --username you --email you@example.com
  aichat characters                  # Browse the featured catalog
  aichat start character <id>        # Open a conversation
  aichat chat <conversation-id> "hi" # Send a message (costs diamonds)
  aichat list                        # List your conversations`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Custom data directory (default ~/.aichat)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
