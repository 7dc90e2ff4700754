package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var (
	chatUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	chatReplyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat <conversation-id> <message>",
	Short: "Send a message in a conversation",
	Long: `Send a message to the conversation's character and print the reply.

Each message costs diamonds; the send is refused when the balance is too low.
The character sees the last ten messages of the conversation as context.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conversationID, text := args[0], args[1]

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
			return fmt.Errorf("conversation not found: %s (run: aichat list)", conversationID)
		}

		cost := app.auth.ChatCost()
		if !app.auth.SpendDiamonds(cost) {
			return fmt.Errorf("not enough diamonds: a message costs %d, you have %d", cost, user.Diamonds)
		}

		// Context window is captured before the new message is appended
		history := app.messages.Recent(conversationID, user.ID, internal.DefaultRecentLimit)

		userMessage := internal.NewChatMessage(internal.RoleUser, text)
		app.messages.Append(userMessage, conversationID, user.ID)

		reply, err := app.llm.SendMessage(cmd.Context(), conversation, text, history)
		if err != nil {
			// The send failed after the deduction; give the diamonds back
			app.auth.AddDiamonds(cost)
			return fmt.Errorf("message failed: %w", err)
		}

		replyMessage := internal.NewChatMessage(internal.RoleAssistant, reply)
		app.messages.Append(replyMessage, conversationID, user.ID)
		app.conversations.UpdateLastMessage(conversationID, reply, user.ID)

		fmt.Printf("%s %s\n\n", chatUserStyle.Render("You:"), text)
		fmt.Printf("%s %s\n", chatReplyStyle.Render(conversation.Name+":"), reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
