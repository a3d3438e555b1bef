package utils

import (
	"sync"
	"time"

	"github.com/DrunkMunki/Suggester/model"

	"github.com/google/uuid"
)

// Draft is an intake in progress: the user picked a suggestion kind (via the
// panel menu or the create command) but has not submitted the modal yet.
type Draft struct {
	UserID    string
	Kind      model.Kind
	CreatedAt time.Time
}

var (
	draftCache = make(map[string]Draft)
	cacheMutex = &sync.RWMutex{}
	cacheTTL   = 5 * time.Minute // Cache entries expire after 5 minutes
)

func init() {
	go startCacheJanitor()
}

// AddDraft stores an intake draft and returns the opaque ID carried in the
// modal's customID.
func AddDraft(draft Draft) string {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	id := uuid.New().String()
	draft.CreatedAt = time.Now()
	draftCache[id] = draft
	return id
}

// GetDraft retrieves an intake draft by ID.
func GetDraft(id string) (Draft, bool) {
	cacheMutex.RLock()
	defer cacheMutex.RUnlock()

	draft, found := draftCache[id]
	return draft, found
}

// RemoveDraft removes an intake draft by ID.
func RemoveDraft(id string) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	delete(draftCache, id)
}

// startCacheJanitor runs a background process to clean up expired drafts.
func startCacheJanitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cacheMutex.Lock()
		for id, draft := range draftCache {
			if time.Since(draft.CreatedAt) > cacheTTL {
				delete(draftCache, id)
			}
		}
		cacheMutex.Unlock()
	}
}
