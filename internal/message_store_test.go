package internal

import (
	"fmt"
	"testing"

	"github.com/shawnxiao66/aichatbot/testutil"
)

const testConversationID = "conv-1"

func newTestMessageStore(t *testing.T) *MessageStore {
	t.Helper()
	db := testutil.CreateInMemoryDB(t)
	t.Cleanup(func() { db.Close() })
	return NewMessageStore(NewBlobStore(db))
}

func TestMessageStore_LoadEmpty(t *testing.T) {
	ms := newTestMessageStore(t)

	messages := ms.Load(testConversationID, testUserID)
	if len(messages) != 0 {
		t.Errorf("Load() on empty store = %d messages, want 0", len(messages))
	}
}

func TestMessageStore_AppendPreservesOrder(t *testing.T) {
	ms := newTestMessageStore(t)

	for _, msg := range CreateTestMessages(5) {
		ms.Append(msg, testConversationID, testUserID)
	}

	messages := ms.Load(testConversationID, testUserID)
	if len(messages) != 5 {
		t.Fatalf("Load() = %d messages, want 5", len(messages))
	}
	for i, msg := range messages {
		wantID := fmt.Sprintf("msg-%03d", i)
		if msg.ID != wantID {
			t.Errorf("messages[%d].ID = %q, want %q", i, msg.ID, wantID)
		}
	}
	if messages[0].Role != RoleUser || messages[1].Role != RoleAssistant {
		t.Errorf("roles = [%q, %q], want alternating user/assistant", messages[0].Role, messages[1].Role)
	}
}

func TestMessageStore_RecentReturnsSuffix(t *testing.T) {
	ms := newTestMessageStore(t)
	ms.Save(CreateTestMessages(25), testConversationID, testUserID)

	recent := ms.Recent(testConversationID, testUserID, DefaultRecentLimit)
	if len(recent) != DefaultRecentLimit {
		t.Fatalf("Recent() = %d messages, want %d", len(recent), DefaultRecentLimit)
	}
	// The last 10 of 25 are msg-015 through msg-024, in order
	for i, msg := range recent {
		wantID := fmt.Sprintf("msg-%03d", 15+i)
		if msg.ID != wantID {
			t.Errorf("recent[%d].ID = %q, want %q", i, msg.ID, wantID)
		}
	}
}

func TestMessageStore_RecentFewerThanLimit(t *testing.T) {
	ms := newTestMessageStore(t)
	ms.Save(CreateTestMessages(3), testConversationID, testUserID)

	recent := ms.Recent(testConversationID, testUserID, DefaultRecentLimit)
	if len(recent) != 3 {
		t.Errorf("Recent() with 3 stored = %d messages, want 3", len(recent))
	}
}

func TestMessageStore_Clear(t *testing.T) {
	ms := newTestMessageStore(t)
	ms.Save(CreateTestMessages(4), testConversationID, testUserID)

	ms.Clear(testConversationID, testUserID)

	if messages := ms.Load(testConversationID, testUserID); len(messages) != 0 {
		t.Errorf("Load() after Clear() = %d messages, want 0", len(messages))
	}
}

func TestMessageStore_ConversationsAreIsolated(t *testing.T) {
	ms := newTestMessageStore(t)
	ms.Save(CreateTestMessages(2), "conv-1", testUserID)
	ms.Save(CreateTestMessages(3), "conv-2", testUserID)

	if got := ms.Load("conv-1", testUserID); len(got) != 2 {
		t.Errorf("conv-1 has %d messages, want 2", len(got))
	}
	if got := ms.Load("conv-2", testUserID); len(got) != 3 {
		t.Errorf("conv-2 has %d messages, want 3", len(got))
	}
}

func TestMessageStore_PersistsPlainJSONArray(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	blobs := NewBlobStore(db)
	ms := NewMessageStore(blobs)

	ms.Save(CreateTestMessages(2), testConversationID, testUserID)

	data, ok := blobs.Get(messagesKey(testConversationID, testUserID))
	if !ok {
		t.Fatal("no blob stored under the messages key")
	}
	var stored []ChatMessage
	testutil.JSONUnmarshal(t, data, &stored)
	if len(stored) != 2 || stored[0].ID != "msg-000" {
		t.Errorf("persisted log = %+v", stored)
	}
}

func TestMessageStore_CorruptLogTreatedAsEmpty(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	ms := NewMessageStore(NewBlobStore(db))

	testutil.InsertRaw(t, db, messagesKey(testConversationID, testUserID), []byte("{broken"))

	if messages := ms.Load(testConversationID, testUserID); len(messages) != 0 {
		t.Errorf("Load() of corrupt log = %d messages, want 0", len(messages))
	}
}
