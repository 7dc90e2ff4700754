package internal

import "encoding/json"

const messagesKeyPrefix = "messages:"

// DefaultRecentLimit bounds the history handed to the completion API
const DefaultRecentLimit = 10

// MessageStore owns the per-(user, conversation) ordered message log.
// Like ConversationStore, storage problems degrade to empty results and
// no-ops rather than errors.
type MessageStore struct {
	blobs *BlobStore
	locks keyedMutex
}

// NewMessageStore creates a store over the given blob store
func NewMessageStore(blobs *BlobStore) *MessageStore {
	return &MessageStore{blobs: blobs}
}

func messagesKey(conversationID, userID string) string {
	return messagesKeyPrefix + userID + ":" + conversationID
}

// Load returns the stored messages in insertion order, or an empty list
func (ms *MessageStore) Load(conversationID, userID string) []ChatMessage {
	lock := ms.locks.get(messagesKey(conversationID, userID))
	lock.Lock()
	defer lock.Unlock()
	return ms.loadLocked(conversationID, userID)
}

func (ms *MessageStore) loadLocked(conversationID, userID string) []ChatMessage {
	data, ok := ms.blobs.Get(messagesKey(conversationID, userID))
	if !ok {
		return []ChatMessage{}
	}

	var messages []ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		LogWarn("messages for %s/%s undecodable, treating as empty: %v", userID, conversationID, err)
		return []ChatMessage{}
	}
	return messages
}

// Save replaces the entire stored message list
func (ms *MessageStore) Save(messages []ChatMessage, conversationID, userID string) {
	lock := ms.locks.get(messagesKey(conversationID, userID))
	lock.Lock()
	defer lock.Unlock()
	ms.saveLocked(messages, conversationID, userID)
}

func (ms *MessageStore) saveLocked(messages []ChatMessage, conversationID, userID string) {
	data, err := json.Marshal(messages)
	if err != nil {
		LogWarn("failed to encode messages for %s/%s: %v", userID, conversationID, err)
		return
	}
	if err := ms.blobs.Set(messagesKey(conversationID, userID), data); err != nil {
		LogWarn("failed to save messages for %s/%s: %v", userID, conversationID, err)
	}
}

// Append adds a message at the end of the log
func (ms *MessageStore) Append(message ChatMessage, conversationID, userID string) {
	lock := ms.locks.get(messagesKey(conversationID, userID))
	lock.Lock()
	defer lock.Unlock()

	messages := ms.loadLocked(conversationID, userID)
	messages = append(messages, message)
	ms.saveLocked(messages, conversationID, userID)
}

// Clear deletes the stored log for the conversation
func (ms *MessageStore) Clear(conversationID, userID string) {
	lock := ms.locks.get(messagesKey(conversationID, userID))
	lock.Lock()
	defer lock.Unlock()

	if err := ms.blobs.Remove(messagesKey(conversationID, userID)); err != nil {
		LogWarn("failed to clear messages for %s/%s: %v", userID, conversationID, err)
	}
}

// Recent returns the last limit messages in their original order.
// When fewer exist, all of them are returned.
func (ms *MessageStore) Recent(conversationID, userID string, limit int) []ChatMessage {
	messages := ms.Load(conversationID, userID)
	if limit <= 0 || len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}
