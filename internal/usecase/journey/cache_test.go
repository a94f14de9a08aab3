package journey

import (
	"testing"
	"time"
)

func TestQuestionCache_OverwriteLastWins(t *testing.T) {
	c := newQuestionCache(0)
	key := readinessKey("u1")

	c.put(key, []string{"first"})
	c.put(key, []string{"second"})

	qs, ok := c.get(key)
	if !ok || len(qs) != 1 || qs[0] != "second" {
		t.Fatalf("expected the later set, got %v (ok=%v)", qs, ok)
	}
}

func TestQuestionCache_TTLExpiry(t *testing.T) {
	c := newQuestionCache(5 * time.Millisecond)
	key := readinessKey("u1")

	c.put(key, []string{"q"})
	if _, ok := c.get(key); !ok {
		t.Fatalf("entry should be readable before expiry")
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := c.get(key); ok {
		t.Fatalf("entry should have expired")
	}
	if _, ok := c.get(key); ok {
		t.Fatalf("expired entry should stay gone")
	}
}

func TestQuestionCache_NoExpiryByDefault(t *testing.T) {
	c := newQuestionCache(0)
	key := actionKey("u1", "a1")

	c.put(key, []string{"q"})
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.get(key); !ok {
		t.Fatalf("zero ttl must disable expiry")
	}
}

func TestQuestionCache_PurgeActionsKeepsReadiness(t *testing.T) {
	c := newQuestionCache(0)
	c.put(readinessKey("u1"), []string{"r"})
	c.put(actionKey("u1", "a1"), []string{"q1"})
	c.put(actionKey("u1", "a2"), []string{"q2"})
	c.put(actionKey("u2", "a1"), []string{"other"})

	c.purgeActions("u1")

	if _, ok := c.get(actionKey("u1", "a1")); ok {
		t.Fatalf("action sets for the user must be purged")
	}
	if _, ok := c.get(actionKey("u1", "a2")); ok {
		t.Fatalf("action sets for the user must be purged")
	}
	if _, ok := c.get(readinessKey("u1")); !ok {
		t.Fatalf("readiness set must survive an action purge")
	}
	if _, ok := c.get(actionKey("u2", "a1")); !ok {
		t.Fatalf("other users must be untouched")
	}
}

func TestQuestionCache_Delete(t *testing.T) {
	c := newQuestionCache(0)
	key := actionKey("u1", "a1")

	c.put(key, []string{"q"})
	c.delete(key)
	if _, ok := c.get(key); ok {
		t.Fatalf("deleted entry still present")
	}
}
