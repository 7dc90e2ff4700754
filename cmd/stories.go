package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Browse the story catalog",
	Long:  `List story cards, most popular first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		stories := app.catalog.FetchStories(cmd.Context())
		if len(stories) == 0 {
			fmt.Println("No stories available")
			return nil
		}

		fmt.Println(catalogHeaderStyle.Render("Stories"))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tCHARACTER\tID\tPOPULARITY")
		for _, s := range stories {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
				catalogNameStyle.Render(s.Title),
				s.CharacterName,
				catalogIDStyle.Render(s.ID),
				s.Popularity)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(storiesCmd)
}
