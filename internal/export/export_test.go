package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shawnxiao66/aichatbot/internal"
	"gopkg.in/yaml.v3"
)

func testTranscript() *internal.Transcript {
	conv := internal.ConversationFromCharacter(internal.CreateTestCharacter("char-1", "Alice"))
	conv.LastMessageTime = time.Date(2025, 6, 1, 12, 4, 0, 0, time.UTC)
	return &internal.Transcript{
		Conversation: conv,
		Messages:     internal.CreateTestMessages(4),
	}
}

func TestNewExporter(t *testing.T) {
	cases := []struct {
		format    string
		extension string
		wantErr   bool
	}{
		{format: "json", extension: "json"},
		{format: "jsonl", extension: "jsonl"},
		{format: "yaml", extension: "yaml"},
		{format: "md", extension: "md"},
		{format: "markdown", extension: "md"},
		{format: "csv", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tc := range cases {
		exporter, err := NewExporter(tc.format)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NewExporter(%q) succeeded, want error", tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewExporter(%q) error = %v", tc.format, err)
			continue
		}
		if got := exporter.Extension(); got != tc.extension {
			t.Errorf("NewExporter(%q).Extension() = %q, want %q", tc.format, got, tc.extension)
		}
	}
}

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(testTranscript(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Transcript
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Conversation.ID != "char-1" || len(decoded.Messages) != 4 {
		t.Errorf("decoded transcript = %s with %d messages", decoded.Conversation.ID, len(decoded.Messages))
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output is not indented")
	}
}

func TestJSONLExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(testTranscript(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("output has %d lines, want one per message (4)", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first["conversation"] != "char-1" {
		t.Errorf("conversation = %v, want char-1", first["conversation"])
	}
	if first["role"] != internal.RoleUser || first["content"] != "message 0" {
		t.Errorf("line 0 = %v", first)
	}
	if _, ok := first["timestamp"]; !ok {
		t.Error("line 0 missing timestamp")
	}
}

func TestJSONLExporter_EmptyTranscript(t *testing.T) {
	transcript := testTranscript()
	transcript.Messages = nil

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(transcript, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty transcript produced output: %q", buf.String())
	}
}

func TestYAMLExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(testTranscript(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := decoded["conversation"]; !ok {
		t.Errorf("YAML output missing conversation block: %v", decoded)
	}
}

func TestMarkdownExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(testTranscript(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Alice\n") {
		t.Errorf("output does not open with the title: %q", out[:40])
	}
	if !strings.Contains(out, "**Messages:** 4") {
		t.Error("output missing message count")
	}
	if !strings.Contains(out, "**user:**") || !strings.Contains(out, "**assistant:**") {
		t.Error("output missing role headers")
	}
	if !strings.Contains(out, "message 3") {
		t.Error("output missing the last message")
	}
}

func TestMarkdownExporter_EscapesOutsideCodeBlocks(t *testing.T) {
	transcript := testTranscript()
	transcript.Messages = []internal.ChatMessage{
		{
			ID:      "msg-1",
			Role:    internal.RoleAssistant,
			Content: "**bold claim**\n```\n**verbatim**\n```",
		},
	}

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(transcript, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `\*\*bold claim\*\*`) {
		t.Error("emphasis outside code block not escaped")
	}
	if !strings.Contains(out, "\n**verbatim**\n") {
		t.Error("code block content was escaped")
	}
}
