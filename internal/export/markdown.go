package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shawnxiao66/aichatbot/internal"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export exports a transcript to Markdown format
func (e *MarkdownExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	conv := transcript.Conversation

	// Header
	_, _ = fmt.Fprintf(w, "# %s\n\n", conv.Name)
	_, _ = fmt.Fprintf(w, "**Conversation:** %s  \n", conv.ID)
	_, _ = fmt.Fprintf(w, "**Kind:** %s  \n", conv.Kind)
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(transcript.Messages))

	if conv.ChatDescription != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", conv.ChatDescription)
	}

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range transcript.Messages {
		timestamp := ""
		if !msg.Timestamp.IsZero() {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp.Format(time.RFC3339))
		}

		content := escapeMarkdown(msg.Content)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, content)

		if i < len(transcript.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
