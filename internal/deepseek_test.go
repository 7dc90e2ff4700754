package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestDeepSeekClient(t *testing.T, handler http.HandlerFunc) *DeepSeekClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &Config{}
	cfg.DeepSeek.APIKey = "test-key"
	cfg.DeepSeek.URL = server.URL
	cfg.DeepSeek.Model = DefaultDeepSeekModel
	cfg.DeepSeek.Temperature = DefaultTemperature
	cfg.DeepSeek.MaxTokens = DefaultMaxTokens
	return NewDeepSeekClient(cfg)
}

func TestSystemPrompt_Character(t *testing.T) {
	character := CreateTestCharacter("char-1", "Alice")
	character.Description = "a thoughtful botanist"
	character.Tags = []string{"kind", "curious"}

	prompt, err := systemPrompt(ConversationFromCharacter(character))
	if err != nil {
		t.Fatalf("systemPrompt() error = %v", err)
	}

	if !strings.Contains(prompt, "You are Alice, a thoughtful botanist.") {
		t.Errorf("prompt missing identity line: %q", prompt)
	}
	if !strings.Contains(prompt, "kind, curious") {
		t.Errorf("prompt missing tags: %q", prompt)
	}
	if !strings.Contains(prompt, "maintaining character consistency") {
		t.Errorf("prompt missing consistency instruction: %q", prompt)
	}
}

func TestSystemPrompt_CharacterWithoutTags(t *testing.T) {
	character := CreateTestCharacter("char-1", "Alice")
	character.Tags = nil

	prompt, err := systemPrompt(ConversationFromCharacter(character))
	if err != nil {
		t.Fatalf("systemPrompt() error = %v", err)
	}
	if strings.Contains(prompt, "personality traits") {
		t.Errorf("tagless prompt mentions traits: %q", prompt)
	}
}

func TestSystemPrompt_Story(t *testing.T) {
	story := CreateTestStory("story-1", "Lost City", "Ben")
	story.Description = "an expedition gone wrong"
	story.ChatDescription = "You speak tersely."

	prompt, err := systemPrompt(ConversationFromStory(story))
	if err != nil {
		t.Fatalf("systemPrompt() error = %v", err)
	}

	if !strings.Contains(prompt, `You are Ben from the story "Lost City".`) {
		t.Errorf("prompt missing story framing: %q", prompt)
	}
	if !strings.Contains(prompt, "an expedition gone wrong") {
		t.Errorf("prompt missing description: %q", prompt)
	}
	if !strings.Contains(prompt, "You speak tersely.") {
		t.Errorf("prompt missing chat description: %q", prompt)
	}
	if !strings.Contains(prompt, "story background consistency") {
		t.Errorf("prompt missing story consistency instruction: %q", prompt)
	}
}

func TestSystemPrompt_PrivateCharacter(t *testing.T) {
	private := CreateTestPrivateCharacter("priv-1", "Cleo", "user-1")

	prompt, err := systemPrompt(ConversationFromPrivateCharacter(private))
	if err != nil {
		t.Fatalf("systemPrompt() error = %v", err)
	}
	if !strings.Contains(prompt, "You are Cleo, a private test character.") {
		t.Errorf("prompt missing identity line: %q", prompt)
	}
}

func TestSystemPrompt_UnknownKind(t *testing.T) {
	if _, err := systemPrompt(Conversation{Kind: "hologram"}); err == nil {
		t.Error("systemPrompt() with unknown kind succeeded, want error")
	}
}

func TestDeepSeekClient_SendMessage(t *testing.T) {
	var gotRequest completionRequest
	client := newTestDeepSeekClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello, traveler."}}]}`))
	})

	conv := ConversationFromCharacter(CreateTestCharacter("char-1", "Alice"))
	history := CreateTestMessages(4)

	reply, err := client.SendMessage(context.Background(), conv, "hi there", history)
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if reply != "Hello, traveler." {
		t.Errorf("reply = %q", reply)
	}

	if gotRequest.Model != DefaultDeepSeekModel {
		t.Errorf("model = %q, want %q", gotRequest.Model, DefaultDeepSeekModel)
	}
	if gotRequest.Temperature != DefaultTemperature || gotRequest.MaxTokens != DefaultMaxTokens {
		t.Errorf("sampling params = (%v, %d)", gotRequest.Temperature, gotRequest.MaxTokens)
	}

	// system prompt, 4 history messages, then the new user message
	if len(gotRequest.Messages) != 6 {
		t.Fatalf("sent %d messages, want 6", len(gotRequest.Messages))
	}
	if gotRequest.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", gotRequest.Messages[0].Role)
	}
	last := gotRequest.Messages[len(gotRequest.Messages)-1]
	if last.Role != RoleUser || last.Content != "hi there" {
		t.Errorf("last message = %+v", last)
	}
}

func TestDeepSeekClient_NonOKStatus(t *testing.T) {
	client := newTestDeepSeekClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	conv := ConversationFromCharacter(CreateTestCharacter("char-1", "Alice"))
	_, err := client.SendMessage(context.Background(), conv, "hi", nil)
	if err == nil {
		t.Fatal("SendMessage() against failing API succeeded")
	}
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error = %T, want *RemoteError", err)
	}
	if remoteErr.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want %d", remoteErr.Status, http.StatusTooManyRequests)
	}
}

func TestDeepSeekClient_MalformedResponse(t *testing.T) {
	client := newTestDeepSeekClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":`))
	})

	conv := ConversationFromCharacter(CreateTestCharacter("char-1", "Alice"))
	_, err := client.SendMessage(context.Background(), conv, "hi", nil)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T (%v), want *ParseError", err, err)
	}
}

func TestDeepSeekClient_EmptyChoices(t *testing.T) {
	client := newTestDeepSeekClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	conv := ConversationFromCharacter(CreateTestCharacter("char-1", "Alice"))
	if _, err := client.SendMessage(context.Background(), conv, "hi", nil); err == nil {
		t.Error("SendMessage() with empty choices succeeded, want error")
	}
}
