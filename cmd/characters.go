package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var charactersCategory string

var (
	catalogHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	catalogNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	catalogIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	catalogTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Browse the character catalog",
	Long:  `List AI characters in a catalog category, most popular first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		characters := app.catalog.FetchCharacters(cmd.Context(), charactersCategory)
		if len(characters) == 0 {
			fmt.Printf("No characters in category %q\n", charactersCategory)
			return nil
		}

		fmt.Println(catalogHeaderStyle.Render(fmt.Sprintf("Characters — %s", charactersCategory)))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tPOPULARITY\tTAGS")
		for _, c := range characters {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				catalogNameStyle.Render(c.Name),
				catalogIDStyle.Render(c.ID),
				c.Popularity,
				catalogTagStyle.Render(strings.Join(c.Tags, ", ")))
		}
		return w.Flush()
	},
}

func init() {
	charactersCmd.Flags().StringVar(&charactersCategory, "category", "featured", "Catalog category (featured, story, private)")
	rootCmd.AddCommand(charactersCmd)
}
