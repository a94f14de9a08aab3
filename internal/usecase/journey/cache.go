package journey

import (
	"sync"
	"time"
)

type questionKey struct {
	userID   string
	actionID string // empty for the readiness set
}

func readinessKey(userID string) questionKey {
	return questionKey{userID: userID}
}

func actionKey(userID, actionID string) questionKey {
	return questionKey{userID: userID, actionID: actionID}
}

type questionEntry struct {
	questions []string
	storedAt  time.Time
}

// questionCache holds the most recently generated question set per key.
// Process-lifetime only: a restart loses every entry, which forces the
// two-phase flows to regenerate. Writes overwrite, last one wins; entries
// expire lazily after the TTL (no expiry when ttl <= 0).
type questionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[questionKey]questionEntry
}

func newQuestionCache(ttl time.Duration) *questionCache {
	return &questionCache{
		ttl:     ttl,
		entries: make(map[questionKey]questionEntry),
	}
}

func (c *questionCache) put(key questionKey, questions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = questionEntry{questions: questions, storedAt: time.Now()}
}

func (c *questionCache) get(key questionKey) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.questions, true
}

func (c *questionCache) delete(key questionKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// purgeActions drops all action question sets for a user. Called when a
// roadmap is replaced, since the old action ids are orphaned.
func (c *questionCache) purgeActions(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.userID == userID && k.actionID != "" {
			delete(c.entries, k)
		}
	}
}
