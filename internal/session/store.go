package session

import (
	"context"
	"encoding/json"
	"fmt"

	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"
)

// Storage keys
const (
	KeyCurrentUserID = "bomul_current_user_id"
	KeyUsers         = "bomul_users"
	KeyCredentials   = "bomul_credentials"
)

// CredentialKey is the per-user key holding a password hash. One key per user
// lets sessions sharing a backend register accounts without overwriting each other.
func CredentialKey(userID string) string {
	return KeyCredentials + ":" + userID
}

// Store reads and writes the session collections as JSON documents
type Store struct {
	kv KVStore
}

func NewStore(kv KVStore) *Store {
	return &Store{kv: kv}
}

// CurrentUserID returns the persisted session pointer, if any
func (s *Store) CurrentUserID(ctx context.Context) (string, bool, error) {
	id, ok, err := s.kv.Get(ctx, KeyCurrentUserID)
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %v", marketerrors.ErrSessionBackend, KeyCurrentUserID, err)
	}
	if !ok || id == "" {
		return "", false, nil
	}
	return id, true, nil
}

// SaveCurrentUserID persists the session pointer; an empty id clears it
func (s *Store) SaveCurrentUserID(ctx context.Context, id string) error {
	var err error
	if id == "" {
		err = s.kv.Remove(ctx, KeyCurrentUserID)
	} else {
		err = s.kv.Set(ctx, KeyCurrentUserID, id)
	}
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", marketerrors.ErrSessionBackend, KeyCurrentUserID, err)
	}
	return nil
}

// Users returns the persisted user collection. ok is false when nothing was stored yet.
func (s *Store) Users(ctx context.Context) ([]models.User, bool, error) {
	var users []models.User
	ok, err := s.load(ctx, KeyUsers, &users)
	return users, ok, err
}

func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return s.save(ctx, KeyUsers, users)
}

// Credential returns the persisted password hash of userID
func (s *Store) Credential(ctx context.Context, userID string) (string, bool, error) {
	key := CredentialKey(userID)
	hash, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	if !ok || hash == "" {
		return "", false, nil
	}
	return hash, true, nil
}

func (s *Store) SaveCredential(ctx context.Context, userID, hash string) error {
	key := CredentialKey(userID)
	if err := s.kv.Set(ctx, key, hash); err != nil {
		return fmt.Errorf("%w: write %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: write %s: %v", marketerrors.ErrSessionBackend, key, err)
	}
	return nil
}
