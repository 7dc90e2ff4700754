package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectPrefix string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump raw local storage rows (debugging)",
	Long:  `Print the raw key/value rows of the local store, optionally filtered by key prefix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		pairs, err := app.blobs.List(inspectPrefix)
		if err != nil {
			return err
		}

		if len(pairs) == 0 {
			fmt.Println("No rows")
			return nil
		}

		for _, pair := range pairs {
			fmt.Printf("%s (%d bytes)\n", pair.Key, len(pair.Value))
			if verbose {
				fmt.Printf("  %s\n", pair.Value)
			}
		}
		fmt.Printf("\n%d row(s)\n", len(pairs))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectPrefix, "prefix", "", "Only show keys with this prefix")
	rootCmd.AddCommand(inspectCmd)
}
