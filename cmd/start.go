package cmd

import (
	"fmt"

	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <character|story|private> <id>",
	Short: "Start a conversation with a catalog character, story, or private character",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id := args[0], args[1]

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
		switch kind {
		case "character":
			found := false
			for _, category := range []string{"featured", "story", "private"} {
				for _, c := range app.catalog.FetchCharacters(cmd.Context(), category) {
					if c.ID == id {
						conversation = internal.ConversationFromCharacter(c)
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				return fmt.Errorf("character not found: %s", id)
			}
		case "story":
			found := false
			for _, s := range app.catalog.FetchStories(cmd.Context()) {
				if s.ID == id {
					conversation = internal.ConversationFromStory(s)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("story not found: %s", id)
			}
		case "private":
			found := false
			for _, p := range app.catalog.FetchPrivateCharacters(cmd.Context(), user.ID) {
				if p.ID == id {
					conversation = internal.ConversationFromPrivateCharacter(p)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("private character not found: %s", id)
			}
		default:
			return fmt.Errorf("unknown kind %q (expected character, story, or private)", kind)
		}

		app.conversations.Upsert(conversation, user.ID)

		fmt.Printf("Started conversation with %s (%s)\n", conversation.Name, conversation.ID)
		if conversation.GreetingMessage != "" {
			fmt.Printf("\n%s: %s\n", conversation.Name, conversation.GreetingMessage)
		}
		fmt.Printf("\nSend a message with: aichat chat %s \"...\"\n", conversation.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
