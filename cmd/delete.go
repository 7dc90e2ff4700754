package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteKeepMessages bool

var deleteCmd = &cobra.Command{
	Use:   "delete <conversation-id>",
	Short: "Delete a conversation",
	Long:  `Remove a conversation from the list, unpin it, and clear its messages.`,
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

		app.conversations.Delete(conversationID, user.ID)
		if !deleteKeepMessages {
			app.messages.Clear(conversationID, user.ID)
		}

		fmt.Printf("Deleted %s\n", conversationID)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteKeepMessages, "keep-messages", false, "Keep the stored message log")
	rootCmd.AddCommand(deleteCmd)
}
