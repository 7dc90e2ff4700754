package internal

import "encoding/json"

const unlockedGalleriesKeyPrefix = "unlocked_galleries:"

// GalleryStore remembers which character galleries a user has paid to unlock.
// Same persisted-set shape as the pinned conversations.
type GalleryStore struct {
	blobs *BlobStore
	locks keyedMutex
}

// NewGalleryStore creates a store over the given blob store
func NewGalleryStore(blobs *BlobStore) *GalleryStore {
	return &GalleryStore{blobs: blobs}
}

func unlockedGalleriesKey(userID string) string {
	return unlockedGalleriesKeyPrefix + userID
}

// IsUnlocked reports whether the user already unlocked the gallery
func (gs *GalleryStore) IsUnlocked(characterID, userID string) bool {
	lock := gs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	return gs.unlockedLocked(userID)[characterID]
}

// Unlock marks the gallery as unlocked for the user
func (gs *GalleryStore) Unlock(characterID, userID string) {
	lock := gs.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	set := gs.unlockedLocked(userID)
	if set[characterID] {
		return
	}
	set[characterID] = true

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	data, err := json.Marshal(ids)
	if err != nil {
		LogWarn("failed to encode unlocked galleries for %s: %v", userID, err)
		return
	}
	if err := gs.blobs.Set(unlockedGalleriesKey(userID), data); err != nil {
		LogWarn("failed to save unlocked galleries for %s: %v", userID, err)
	}
}

func (gs *GalleryStore) unlockedLocked(userID string) map[string]bool {
	set := make(map[string]bool)
	data, ok := gs.blobs.Get(unlockedGalleriesKey(userID))
	if !ok {
		return set
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		LogWarn("unlocked galleries for %s undecodable, treating as empty: %v", userID, err)
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}
