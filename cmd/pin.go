package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <conversation-id>",
	Short: "Pin a conversation to the top of the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPinned(args[0], true)
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin <conversation-id>",
	Short: "Unpin a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPinned(args[0], false)
	},
}

func setPinned(conversationID string, pinned bool) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.requireUser()
	if err != nil {
		return err
	}

	app.conversations.SetPinned(conversationID, pinned, user.ID)
	if pinned {
		fmt.Printf("Pinned %s\n", conversationID)
	} else {
		fmt.Printf("Unpinned %s\n", conversationID)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}
