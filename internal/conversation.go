package internal

import (
	"encoding/json"
	"time"
)

// Conversation kinds
const (
	KindCharacter        = "character"
	KindStory            = "story"
	KindPrivateCharacter = "privateCharacter"
)

// DefaultLastMessage is the placeholder shown before any message is sent
const DefaultLastMessage = "Start conversation"

// Conversation is a chat thread with exactly one character variant attached.
// Kind names the variant; the matching pointer is non-nil, the other two nil.
// The conversation id always equals the id of the wrapped record.
type Conversation struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar"`
	BackgroundImage string    `json:"background_image,omitempty"`
	ChatDescription string    `json:"chat_description,omitempty"`
	GreetingMessage string    `json:"greeting_message,omitempty"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	Kind            string    `json:"kind"`

	Character        *Character        `json:"character,omitempty"`
	Story            *Story            `json:"story,omitempty"`
	PrivateCharacter *PrivateCharacter `json:"private_character,omitempty"`
}

// ConversationFromCharacter builds a conversation for a catalog character
func ConversationFromCharacter(c Character) Conversation {
	return Conversation{
		ID:              c.ID,
		Name:            c.Name,
		Avatar:          c.Avatar,
		BackgroundImage: c.BackgroundImage,
		ChatDescription: c.ChatDescription,
		GreetingMessage: c.GreetingMessage,
		LastMessage:     DefaultLastMessage,
		LastMessageTime: time.Now(),
		Kind:            KindCharacter,
		Character:       &c,
	}
}

// ConversationFromStory builds a conversation for a story card.
// The display name is the story's character name and the avatar its cover.
func ConversationFromStory(s Story) Conversation {
	return Conversation{
		ID:              s.ID,
		Name:            s.CharacterName,
		Avatar:          s.Cover,
		BackgroundImage: s.BackgroundImage,
		ChatDescription: s.ChatDescription,
		GreetingMessage: s.GreetingMessage,
		LastMessage:     DefaultLastMessage,
		LastMessageTime: time.Now(),
		Kind:            KindStory,
		Story:           &s,
	}
}

// ConversationFromPrivateCharacter builds a conversation for a private character.
// A missing avatar maps to the empty string.
func ConversationFromPrivateCharacter(p PrivateCharacter) Conversation {
	return Conversation{
		ID:               p.ID,
		Name:             p.Name,
		Avatar:           p.Avatar,
		BackgroundImage:  p.BackgroundImage,
		ChatDescription:  p.ChatDescription,
		GreetingMessage:  p.GreetingMessage,
		LastMessage:      DefaultLastMessage,
		LastMessageTime:  time.Now(),
		Kind:             KindPrivateCharacter,
		PrivateCharacter: &p,
	}
}

// Gallery returns the media URLs of the attached variant record
func (c Conversation) Gallery() []string {
	switch c.Kind {
	case KindCharacter:
		if c.Character != nil {
			return c.Character.Gallery
		}
	case KindStory:
		if c.Story != nil {
			return c.Story.Gallery
		}
	case KindPrivateCharacter:
		if c.PrivateCharacter != nil {
			return c.PrivateCharacter.Gallery
		}
	}
	return nil
}

// storedConversation is the persisted form: flattened display fields plus the
// kind discriminator and the serialized payload for exactly that variant.
type storedConversation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Avatar          string          `json:"avatar"`
	BackgroundImage string          `json:"background_image,omitempty"`
	ChatDescription string          `json:"chat_description,omitempty"`
	GreetingMessage string          `json:"greeting_message,omitempty"`
	LastMessage     string          `json:"last_message"`
	LastMessageTime time.Time       `json:"last_message_time"`
	Kind            string          `json:"kind"`
	Payload         json.RawMessage `json:"payload"`
}

// toStored serializes the attached variant into the payload blob
func (c Conversation) toStored() (storedConversation, error) {
	stored := storedConversation{
		ID:              c.ID,
		Name:            c.Name,
		Avatar:          c.Avatar,
		BackgroundImage: c.BackgroundImage,
		ChatDescription: c.ChatDescription,
		GreetingMessage: c.GreetingMessage,
		LastMessage:     c.LastMessage,
		LastMessageTime: c.LastMessageTime,
		Kind:            c.Kind,
	}

	var payload any
	switch c.Kind {
	case KindCharacter:
		payload = c.Character
	case KindStory:
		payload = c.Story
	case KindPrivateCharacter:
		payload = c.PrivateCharacter
	default:
		return storedConversation{}, &ParseError{Source: "conversation", Key: c.ID, Err: errUnknownKind(c.Kind)}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return storedConversation{}, err
	}
	stored.Payload = data
	return stored, nil
}

// toConversation decodes the payload according to the declared kind.
// A payload that does not decode for its kind is an error; callers drop the entry.
func (sc storedConversation) toConversation() (Conversation, error) {
	conv := Conversation{
		ID:              sc.ID,
		Name:            sc.Name,
		Avatar:          sc.Avatar,
		BackgroundImage: sc.BackgroundImage,
		ChatDescription: sc.ChatDescription,
		GreetingMessage: sc.GreetingMessage,
		LastMessage:     sc.LastMessage,
		LastMessageTime: sc.LastMessageTime,
		Kind:            sc.Kind,
	}

	switch sc.Kind {
	case KindCharacter:
		var c Character
		if err := json.Unmarshal(sc.Payload, &c); err != nil {
			return Conversation{}, &ParseError{Source: "conversation", Key: sc.ID, Err: err}
		}
		conv.Character = &c
	case KindStory:
		var s Story
		if err := json.Unmarshal(sc.Payload, &s); err != nil {
			return Conversation{}, &ParseError{Source: "conversation", Key: sc.ID, Err: err}
		}
		conv.Story = &s
	case KindPrivateCharacter:
		var p PrivateCharacter
		if err := json.Unmarshal(sc.Payload, &p); err != nil {
			return Conversation{}, &ParseError{Source: "conversation", Key: sc.ID, Err: err}
		}
		conv.PrivateCharacter = &p
	default:
		return Conversation{}, &ParseError{Source: "conversation", Key: sc.ID, Err: errUnknownKind(sc.Kind)}
	}

	return conv, nil
}
