package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var showLimit int

var (
	showHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	showMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	showUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	showAssistantStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	showContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	showTimestampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

var showCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Show the messages of a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conversationID := args[0]

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		user, err := app.requireUser()
		if err != nil {
			return err
		}

		var conversation internal.Conversation
		found := false
		for _, conv := range app.conversations.Load(user.ID) {
			if conv.ID == conversationID {
				conversation = conv
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("conversation not found: %s", conversationID)
		}

		messages := app.messages.Load(conversationID, user.ID)
		if showLimit > 0 && len(messages) > showLimit {
			messages = messages[len(messages)-showLimit:]
		}

		fmt.Println(showHeaderStyle.Render(conversation.Name))
		meta := fmt.Sprintf("kind: %s · %d message(s)", conversation.Kind, len(messages))
		if app.conversations.IsPinned(conversationID, user.ID) {
			meta += " · pinned"
		}
		fmt.Println(showMetaStyle.Render(meta))

		if conversation.GreetingMessage != "" && len(messages) == 0 {
			fmt.Println(showAssistantStyle.Render(conversation.Name + ":"))
			fmt.Println(showContentStyle.Render(conversation.GreetingMessage))
			return nil
		}

		for _, msg := range messages {
			label := showUserStyle.Render("You:")
			if msg.Role == internal.RoleAssistant {
				label = showAssistantStyle.Render(conversation.Name + ":")
			}
			fmt.Printf("%s %s\n", label, showTimestampStyle.Render(msg.Timestamp.Format(time.DateTime)))
			fmt.Println(showContentStyle.Render(msg.Content))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Show only the last N messages")
	rootCmd.AddCommand(showCmd)
}
