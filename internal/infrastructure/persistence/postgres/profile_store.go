package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"career-navigator/internal/database"
	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
)

// ProfileStore keeps one JSONB document per user. All operations are
// safe-fail: storage errors are logged and reported as false/absent so a
// store outage degrades requests instead of crashing them.
type ProfileStore struct {
	db  database.DB
	log *zap.Logger
}

func NewProfileStore(db database.DB, log *zap.Logger) *ProfileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileStore{db: db, log: log}
}

// Available reports whether a database handle is wired in.
func (s *ProfileStore) Available() bool {
	return s != nil && s.db != nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id      TEXT PRIMARY KEY,
		doc          JSONB NOT NULL,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS user_profiles_email_idx
		ON user_profiles ((doc->'profile'->>'email'))`,
	`CREATE INDEX IF NOT EXISTS user_profiles_last_updated_idx
		ON user_profiles (last_updated DESC)`,
	`CREATE INDEX IF NOT EXISTS user_profiles_target_role_idx
		ON user_profiles ((doc->'profile'->>'target_role'))`,
}

// EnsureSchema creates the table and indexes. Idempotent, safe to re-run.
func (s *ProfileStore) EnsureSchema(ctx context.Context) error {
	if !s.Available() {
		return errors.New("profile store: no database")
	}
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileStore) Upsert(ctx context.Context, userID string, doc journey.UserProfile) bool {
	if !s.Available() {
		return false
	}
	doc.UserID = userID
	doc.LastUpdated = time.Now().UTC()

	raw, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("profile store: marshal", zap.String("user_id", userID), zap.Error(err))
		return false
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO user_profiles (user_id, doc, last_updated)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE
		 SET doc = EXCLUDED.doc, last_updated = now()`,
		userID, raw,
	)
	if err != nil {
		s.log.Error("profile store: upsert", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return true
}

func (s *ProfileStore) Get(ctx context.Context, userID string) (journey.UserProfile, bool) {
	if !s.Available() {
		return journey.UserProfile{}, false
	}
	return s.scanDoc(
		s.db.QueryRow(ctx, `SELECT doc FROM user_profiles WHERE user_id = $1`, userID),
		"user_id", userID,
	)
}

func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (journey.UserProfile, bool) {
	if !s.Available() || email == "" {
		return journey.UserProfile{}, false
	}
	return s.scanDoc(
		s.db.QueryRow(ctx, `SELECT doc FROM user_profiles WHERE doc->'profile'->>'email' = $1`, email),
		"email", email,
	)
}

// Patch merges the given top-level fields into the stored document in a
// single statement, so each mutation is one atomic document update.
func (s *ProfileStore) Patch(ctx context.Context, userID string, fields map[string]any) bool {
	if !s.Available() {
		return false
	}
	if len(fields) == 0 {
		return true
	}

	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["last_updated"] = time.Now().UTC()

	raw, err := json.Marshal(merged)
	if err != nil {
		s.log.Error("profile store: marshal patch", zap.String("user_id", userID), zap.Error(err))
		return false
	}

	affected, err := s.db.Exec(ctx,
		`UPDATE user_profiles
		 SET doc = doc || $2::jsonb, last_updated = now()
		 WHERE user_id = $1`,
		userID, raw,
	)
	if err != nil {
		s.log.Error("profile store: patch", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return affected > 0
}

func (s *ProfileStore) scanDoc(row database.Row, key, value string) (journey.UserProfile, bool) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("profile store: query", zap.String(key, value), zap.Error(err))
		}
		return journey.UserProfile{}, false
	}

	var doc journey.UserProfile
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Error("profile store: unmarshal", zap.String(key, value), zap.Error(err))
		return journey.UserProfile{}, false
	}
	return doc, true
}
