package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shawnxiao66/aichatbot/internal"
	"github.com/spf13/cobra"
)

var (
	createName        string
	createDescription string
	createGender      string
	createAvatar      string
	createGreeting    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a private character",
	Long:  `Create a character only you can chat with. The character is saved to the backend and a conversation is started.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if createName == "" || createDescription == "" {
			return fmt.Errorf("--name and --description are required")
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		user, err := app.requireUser()
		if err != nil {
			return err
		}

		character := internal.PrivateCharacter{
			ID:              uuid.NewString(),
			Name:            createName,
			Avatar:          createAvatar,
			Description:     createDescription,
			Gender:          createGender,
			GreetingMessage: createGreeting,
		}

		created, err := app.catalog.CreatePrivateCharacter(cmd.Context(), character, user.ID)
		if err != nil {
			internal.LogWarn("backend rejected the character, keeping it local: %v", err)
			created = character
			created.UserID = user.ID
		}

		conversation := internal.ConversationFromPrivateCharacter(created)
		app.conversations.Upsert(conversation, user.ID)

		fmt.Printf("Created %s (%s)\n", created.Name, created.ID)
		fmt.Printf("Chat with: aichat chat %s \"...\"\n", conversation.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Character name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Character description")
	createCmd.Flags().StringVar(&createGender, "gender", "female", "Gender (male or female)")
	createCmd.Flags().StringVar(&createAvatar, "avatar", "", "Avatar image URL")
	createCmd.Flags().StringVar(&createGreeting, "greeting", "", "Greeting message")
	rootCmd.AddCommand(createCmd)
}
