package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/shawnxiao66/aichatbot/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [conversation-id]",
	Short: "Export conversations to a file",
	Long: `Export one conversation (or all of them with --all) in the chosen format.

Supported formats: json, jsonl, md, yaml. Use --output - to write a single
conversation to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !exportAll && len(args) == 0 {
			return fmt.Errorf("provide a conversation id or --all")
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		user, err := app.requireUser()
		if err != nil {
			return err
		}

		conversations := app.conversations.Load(user.ID)
		if !exportAll {
			id := args[0]
			kept := conversations[:0]
			for _, conv := range conversations {
				if conv.ID == id {
					kept = append(kept, conv)
				}
			}
			conversations = kept
			if len(conversations) == 0 {
				return fmt.Errorf("conversation not found: %s", id)
			}
		}

		for _, conv := range conversations {
			transcript := &internal.Transcript{
				Conversation: conv,
				Messages:     app.messages.Load(conv.ID, user.ID),
			}

			if exportOutput == "-" && !exportAll {
				if err := exporter.Export(transcript, os.Stdout); err != nil {
					return &internal.ExportError{Format: exportFormat, Path: "-", Err: err}
				}
				return nil
			}

			dir := exportOutput
			if dir == "" || dir == "-" {
				dir = "."
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			path := filepath.Join(dir, fmt.Sprintf("conversation_%s.%s", conv.ID, exporter.Extension()))
			f, err := os.Create(path)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			if err := exporter.Export(transcript, f); err != nil {
				f.Close()
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			if err := f.Close(); err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			fmt.Printf("Exported %s -> %s\n", conv.Name, path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory, or - for stdout")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every conversation")
	rootCmd.AddCommand(exportCmd)
}
