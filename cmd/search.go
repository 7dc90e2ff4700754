package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchStories bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search characters or stories by name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		if searchStories {
			stories, err := app.catalog.SearchStories(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("story search failed: %w", err)
			}
			if len(stories) == 0 {
				fmt.Printf("No stories matching %q\n", query)
				return nil
			}
			fmt.Fprintln(w, "TITLE\tCHARACTER\tID")
			for _, s := range stories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", catalogNameStyle.Render(s.Title), s.CharacterName, catalogIDStyle.Render(s.ID))
			}
			return w.Flush()
		}

		characters, err := app.catalog.SearchCharacters(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("character search failed: %w", err)
		}
		if len(characters) == 0 {
			fmt.Printf("No characters matching %q\n", query)
			return nil
		}
		fmt.Fprintln(w, "NAME\tID\tPOPULARITY")
		for _, c := range characters {
			fmt.Fprintf(w, "%s\t%s\t%d\n", catalogNameStyle.Render(c.Name), catalogIDStyle.Render(c.ID), c.Popularity)
		}
		return w.Flush()
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchStories, "stories", false, "Search stories instead of characters")
	rootCmd.AddCommand(searchCmd)
}
