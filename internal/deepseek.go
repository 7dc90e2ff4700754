package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DeepSeekClient generates character replies via the chat-completions API
type DeepSeekClient struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
	http        *http.Client
}

// NewDeepSeekClient creates a client from the loaded config
func NewDeepSeekClient(cfg *Config) *DeepSeekClient {
	return &DeepSeekClient{
		apiKey:      cfg.DeepSeek.APIKey,
		apiURL:      cfg.DeepSeek.URL,
		model:       cfg.DeepSeek.Model,
		temperature: cfg.DeepSeek.Temperature,
		maxTokens:   cfg.DeepSeek.MaxTokens,
		http:        &http.Client{Timeout: 60 * time.Second},
	}
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// SendMessage generates a reply from the conversation's character.
// History is the bounded recent log from MessageStore.Recent.
func (c *DeepSeekClient) SendMessage(ctx context.Context, conversation Conversation, message string, history []ChatMessage) (string, error) {
	prompt, err := systemPrompt(conversation)
	if err != nil {
		return "", err
	}
	return c.complete(ctx, prompt, message, history)
}

// systemPrompt builds the role-play instruction for the attached variant
func systemPrompt(conversation Conversation) (string, error) {
	var b strings.Builder
	switch conversation.Kind {
	case KindCharacter:
		ch := conversation.Character
		fmt.Fprintf(&b, "You are %s, %s.", ch.Name, ch.Description)
		if len(ch.Tags) > 0 {
			fmt.Fprintf(&b, "\nYour personality traits: %s.", strings.Join(ch.Tags, ", "))
		}
		b.WriteString("\nPlease converse with the user as this character, maintaining character consistency.")
	case KindStory:
		st := conversation.Story
		fmt.Fprintf(&b, "You are %s from the story %q.\n%s", st.CharacterName, st.Title, st.Description)
		if st.ChatDescription != "" {
			fmt.Fprintf(&b, "\n\n%s", st.ChatDescription)
		}
		b.WriteString("\nPlease converse with the user as this character, maintaining character setting and story background consistency.")
	case KindPrivateCharacter:
		pc := conversation.PrivateCharacter
		fmt.Fprintf(&b, "You are %s, %s.", pc.Name, pc.Description)
		if pc.ChatDescription != "" {
			fmt.Fprintf(&b, "\n\n%s", pc.ChatDescription)
		}
		b.WriteString("\nPlease converse with the user as this character, maintaining character consistency.")
	default:
		return "", errUnknownKind(conversation.Kind)
	}
	return b.String(), nil
}

func (c *DeepSeekClient) complete(ctx context.Context, prompt, message string, history []ChatMessage) (string, error) {
	messages := make([]completionMessage, 0, len(history)+2)
	messages = append(messages, completionMessage{Role: "system", Content: prompt})
	for _, m := range history {
		messages = append(messages, completionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, completionMessage{Role: RoleUser, Content: message})

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", &RemoteError{Service: "deepseek", Op: "completion", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &RemoteError{Service: "deepseek", Op: "completion", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RemoteError{Service: "deepseek", Op: "completion", Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &RemoteError{
			Service: "deepseek",
			Op:      "completion",
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("unexpected status: %s", bytes.TrimSpace(data)),
		}
	}

	var parsed completionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ParseError{Source: "completion", Key: c.model, Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &RemoteError{Service: "deepseek", Op: "completion", Err: fmt.Errorf("no choices in response")}
	}
	return parsed.Choices[0].Message.Content, nil
}
