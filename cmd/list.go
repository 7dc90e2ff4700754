package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	listNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	listIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	listPinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	listDateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	Long:  `List the logged-in user's conversations, pinned first, then most recent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if len(conversations) == 0 {
			fmt.Println("No conversations yet (run: aichat characters, then aichat start)")
			return nil
		}

		pinned := app.conversations.PinnedIDs(user.ID)

		fmt.Println(listHeaderStyle.Render(fmt.Sprintf("Conversations (%d)", len(conversations))))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, " \tNAME\tKIND\tLAST MESSAGE\tWHEN\tID")
		for _, conv := range conversations {
			pin := " "
			if pinned[conv.ID] {
				pin = listPinStyle.Render("*")
			}
			last := conv.LastMessage
			if runes := []rune(last); len(runes) > 40 {
				last = string(runes[:40]) + "…"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				pin,
				listNameStyle.Render(conv.Name),
				conv.Kind,
				last,
				listDateStyle.Render(conv.LastMessageTime.Format(time.DateTime)),
				listIDStyle.Render(conv.ID))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
