package cmd

import (
	"fmt"

	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery <conversation-id>",
	Short: "Unlock and list a character's gallery",
	Long:  `Unlock the gallery of a conversation's character. The first unlock costs diamonds; after that it is free.`,
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

		gallery := conversation.Gallery()
		if len(gallery) == 0 {
			fmt.Printf("%s has no gallery\n", conversation.Name)
			return nil
		}

		galleries := internal.NewGalleryStore(app.blobs)
		if !galleries.IsUnlocked(conversationID, user.ID) {
			cost := app.auth.GalleryCost()
			if !app.auth.SpendDiamonds(cost) {
				return fmt.Errorf("not enough diamonds: unlocking costs %d, you have %d", cost, user.Diamonds)
			}
			galleries.Unlock(conversationID, user.ID)
			fmt.Printf("Unlocked %s's gallery for %d diamonds\n\n", conversation.Name, cost)
		}

		for _, url := range gallery {
			fmt.Println(url)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}
