package internal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Character represents a public AI character from the characters catalog
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"` // image URL
	Popularity      int      `json:"popularity"`
	Tags            []string `json:"tags,omitempty"`
	Description     string   `json:"description"`
	Gender          string   `json:"gender"`   // "male" or "female"
	Category        string   `json:"category"` // "featured", "story", "private"
	BackgroundImage string   `json:"background_image,omitempty"`
	ChatDescription string   `json:"chat_description,omitempty"`
	GreetingMessage string   `json:"greeting_message,omitempty"`
	Gallery         []string `json:"gallery,omitempty"`
}

// Story represents a story-mode character card
type Story struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Cover           string   `json:"cover"` // cover image URL
	Popularity      int      `json:"popularity"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	CharacterName   string   `json:"character_name"`
	Gender          string   `json:"gender"`
	BackgroundImage string   `json:"background_image,omitempty"`
	ChatDescription string   `json:"chat_description,omitempty"`
	GreetingMessage string   `json:"greeting_message,omitempty"`
	Gallery         []string `json:"gallery,omitempty"`
}

// UnmarshalJSON tolerates records missing optional catalog columns,
// matching what the backend returns for older rows.
func (s *Story) UnmarshalJSON(data []byte) error {
	type storyAlias Story
	var alias storyAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	if alias.Category == "" {
		alias.Category = "story"
	}
	if alias.Gender == "" {
		alias.Gender = "female"
	}
	*s = Story(alias)
	return nil
}

// PrivateCharacter represents a user-created character, visible only to its owner
type PrivateCharacter struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id,omitempty"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar,omitempty"`
	Description     string   `json:"description"`
	Gender          string   `json:"gender"`
	BackgroundImage string   `json:"background_image,omitempty"`
	ChatDescription string   `json:"chat_description,omitempty"`
	GreetingMessage string   `json:"greeting_message,omitempty"`
	Gallery         []string `json:"gallery,omitempty"`
}

// User represents an account with its diamonds balance
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Avatar   string `json:"avatar,omitempty"`
	Level    int    `json:"level"`
	Diamonds int    `json:"diamonds"`
}

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single message in a conversation log.
// Messages are kept in insertion order, never re-sorted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a message with a fresh id and the current time
func NewChatMessage(role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
