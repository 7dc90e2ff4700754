package internal

import (
	"fmt"
	"time"
)

// CreateTestCharacter creates a catalog character fixture
func CreateTestCharacter(id, name string) Character {
	return Character{
		ID:          id,
		Name:        name,
		Avatar:      fmt.Sprintf("https://example.com/%s.jpg", id),
		Popularity:  1000,
		Tags:        []string{"kind", "curious"},
		Description: "a test character",
		Gender:      "female",
		Category:    "featured",
	}
}

// CreateTestStory creates a story fixture
func CreateTestStory(id, title, characterName string) Story {
	return Story{
		ID:            id,
		Title:         title,
		Cover:         fmt.Sprintf("https://example.com/%s-cover.jpg", id),
		Popularity:    500,
		Description:   "a test story",
		Category:      "story",
		CharacterName: characterName,
		Gender:        "male",
	}
}

// CreateTestPrivateCharacter creates a private character fixture
func CreateTestPrivateCharacter(id, name, userID string) PrivateCharacter {
	return PrivateCharacter{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: "a private test character",
		Gender:      "female",
	}
}

// CreateTestConversation creates a character-kind conversation with a fixed last-message time
func CreateTestConversation(id, name string, lastMessageTime time.Time) Conversation {
	conv := ConversationFromCharacter(CreateTestCharacter(id, name))
	conv.LastMessageTime = lastMessageTime
	return conv
}

// CreateTestMessages creates n alternating user/assistant messages in insertion order
func CreateTestMessages(n int) []ChatMessage {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := make([]ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		messages = append(messages, ChatMessage{
			ID:        fmt.Sprintf("msg-%03d", i),
			Role:      role,
			Content:   fmt.Sprintf("message %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return messages
}
