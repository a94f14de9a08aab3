package journey

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Store persists one document per user. All operations are safe-fail: a
// storage failure is reported as false/absent, never as a panic or error,
// and the caller decides how to react.
type Store interface {
	Upsert(ctx context.Context, userID string, doc UserProfile) bool
	Get(ctx context.Context, userID string) (UserProfile, bool)
	FindByEmail(ctx context.Context, email string) (UserProfile, bool)
	Patch(ctx context.Context, userID string, fields map[string]any) bool
}
