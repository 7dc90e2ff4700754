package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	profileLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	profileValueStyle = lipgloss.NewStyle().
				Bold(true)

	diamondsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged-in account and diamonds balance",
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

		fmt.Printf("%s %s\n", profileLabelStyle.Render("Username:"), profileValueStyle.Render(user.Username))
		fmt.Printf("%s %s\n", profileLabelStyle.Render("Email:"), profileValueStyle.Render(user.Email))
		fmt.Printf("%s %s\n", profileLabelStyle.Render("Gender:"), profileValueStyle.Render(user.Gender))
		fmt.Printf("%s %d\n", profileLabelStyle.Render("Level:"), user.Level)
		fmt.Printf("%s %s\n", profileLabelStyle.Render("Diamonds:"), diamondsStyle.Render(fmt.Sprintf("%d", user.Diamonds)))
		fmt.Printf("\nChat cost: %d diamonds per message, gallery unlock: %d diamonds\n",
			app.auth.ChatCost(), app.auth.GalleryCost())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
