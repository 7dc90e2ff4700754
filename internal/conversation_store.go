package internal

import (
	"encoding/json"
	"sort"
	"sync"
	"time"
)

const (
	conversationsKeyPrefix = "conversations:"
	pinnedKeyPrefix        = "pinned:"
)

// keyedMutex hands out one mutex per key so load-modify-save cycles
// against the same key serialize instead of losing updates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (km *keyedMutex) get(key string) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()
	if km.locks == nil {
		km.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := km.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		km.locks[key] = lock
	}
	return lock
}

// ConversationStore owns the per-user ordered conversation list and pin state.
// Storage or decode failures never reach the caller: loads degrade to empty
// lists and mutations to no-ops.
type ConversationStore struct {
	blobs *BlobStore
	locks keyedMutex
	now   func() time.Time
}

// NewConversationStore creates a store over the given blob store
func NewConversationStore(blobs *BlobStore) *ConversationStore {
	return &ConversationStore{
		blobs: blobs,
		now:   time.Now,
	}
}

func conversationsKey(userID string) string {
	return conversationsKeyPrefix + userID
}

func pinnedKey(userID string) string {
	return pinnedKeyPrefix + userID
}

// Load returns the user's conversations, pinned first, then most recent first.
// Absent or undecodable state yields an empty list; corrupt entries are skipped.
func (cs *ConversationStore) Load(userID string) []Conversation {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	return cs.loadLocked(userID)
}

func (cs *ConversationStore) loadLocked(userID string) []Conversation {
	conversations := cs.readList(userID)
	cs.sortConversations(conversations, cs.pinnedIDsLocked(userID))
	return conversations
}

func (cs *ConversationStore) readList(userID string) []Conversation {
	data, ok := cs.blobs.Get(conversationsKey(userID))
	if !ok {
		return []Conversation{}
	}

	var stored []storedConversation
	if err := json.Unmarshal(data, &stored); err != nil {
		LogWarn("conversations for %s undecodable, treating as empty: %v", userID, err)
		return []Conversation{}
	}

	conversations := make([]Conversation, 0, len(stored))
	for _, sc := range stored {
		conv, err := sc.toConversation()
		if err != nil {
			LogDebug("skipping corrupt conversation entry %s: %v", sc.ID, err)
			continue
		}
		conversations = append(conversations, conv)
	}
	return conversations
}

// Save replaces the user's entire stored list. Callers normally go through
// Upsert/UpdateLastMessage/Delete; Save exists for bulk rewrites.
func (cs *ConversationStore) Save(conversations []Conversation, userID string) {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	cs.saveLocked(conversations, userID)
}

func (cs *ConversationStore) saveLocked(conversations []Conversation, userID string) {
	stored := make([]storedConversation, 0, len(conversations))
	for _, conv := range conversations {
		sc, err := conv.toStored()
		if err != nil {
			LogWarn("not persisting conversation %s: %v", conv.ID, err)
			continue
		}
		stored = append(stored, sc)
	}

	data, err := json.Marshal(stored)
	if err != nil {
		LogWarn("failed to encode conversations for %s: %v", userID, err)
		return
	}
	if err := cs.blobs.Set(conversationsKey(userID), data); err != nil {
		LogWarn("failed to save conversations for %s: %v", userID, err)
	}
}

// Upsert replaces the conversation with the same id in place, or inserts the
// new conversation at the front, then re-sorts and saves.
func (cs *ConversationStore) Upsert(conversation Conversation, userID string) {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	conversations := cs.readList(userID)
	replaced := false
	for i := range conversations {
		if conversations[i].ID == conversation.ID {
			conversations[i] = conversation
			replaced = true
			break
		}
	}
	if !replaced {
		conversations = append([]Conversation{conversation}, conversations...)
	}

	cs.sortConversations(conversations, cs.pinnedIDsLocked(userID))
	cs.saveLocked(conversations, userID)
}

// UpdateLastMessage sets the conversation's last message and bumps its time
// to now, preserving every other field. No-op when the id is not present.
func (cs *ConversationStore) UpdateLastMessage(conversationID, message, userID string) {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	conversations := cs.readList(userID)
	found := false
	for i := range conversations {
		if conversations[i].ID == conversationID {
			conversations[i].LastMessage = message
			conversations[i].LastMessageTime = cs.now()
			found = true
			break
		}
	}
	if !found {
		return
	}

	cs.sortConversations(conversations, cs.pinnedIDsLocked(userID))
	cs.saveLocked(conversations, userID)
}

// Delete removes the conversation from the list and unpins it.
// The two writes are best-effort, not a transaction.
func (cs *ConversationStore) Delete(conversationID, userID string) {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	conversations := cs.readList(userID)
	kept := conversations[:0]
	for _, conv := range conversations {
		if conv.ID != conversationID {
			kept = append(kept, conv)
		}
	}
	cs.saveLocked(kept, userID)
	cs.setPinnedLocked(conversationID, false, userID)
}

// PinnedIDs returns the user's pinned conversation ids as a set
func (cs *ConversationStore) PinnedIDs(userID string) map[string]bool {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	return cs.pinnedIDsLocked(userID)
}

func (cs *ConversationStore) pinnedIDsLocked(userID string) map[string]bool {
	set := make(map[string]bool)
	data, ok := cs.blobs.Get(pinnedKey(userID))
	if !ok {
		return set
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		LogWarn("pinned set for %s undecodable, treating as empty: %v", userID, err)
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// IsPinned reports whether the conversation is pinned for the user
func (cs *ConversationStore) IsPinned(conversationID, userID string) bool {
	return cs.PinnedIDs(userID)[conversationID]
}

// SetPinned pins or unpins a conversation
func (cs *ConversationStore) SetPinned(conversationID string, pinned bool, userID string) {
	lock := cs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	cs.setPinnedLocked(conversationID, pinned, userID)
}

func (cs *ConversationStore) setPinnedLocked(conversationID string, pinned bool, userID string) {
	set := cs.pinnedIDsLocked(userID)
	if pinned {
		set[conversationID] = true
	} else {
		delete(set, conversationID)
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		LogWarn("failed to encode pinned set for %s: %v", userID, err)
		return
	}
	if err := cs.blobs.Set(pinnedKey(userID), data); err != nil {
		LogWarn("failed to save pinned set for %s: %v", userID, err)
	}
}

// sortConversations orders pinned before unpinned, then newest last message
// first within each partition. The sort is stable.
func (cs *ConversationStore) sortConversations(conversations []Conversation, pinned map[string]bool) {
	sort.SliceStable(conversations, func(i, j int) bool {
		iPinned := pinned[conversations[i].ID]
		jPinned := pinned[conversations[j].ID]
		if iPinned != jPinned {
			return iPinned
		}
		return conversations[i].LastMessageTime.After(conversations[j].LastMessageTime)
	})
}
