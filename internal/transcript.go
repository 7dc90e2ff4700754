package internal

// Transcript bundles a conversation with its full message log for export
type Transcript struct {
	Conversation Conversation  `json:"conversation"`
	Messages     []ChatMessage `json:"messages"`
}
