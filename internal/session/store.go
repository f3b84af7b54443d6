package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// Identity is the cached record of the signed-in user.
type Identity struct {
	UserID              string          `json:"userID"`
	FullName            string          `json:"fullName"`
	Phone               string          `json:"phone"`
	Role                domain.UserRole `json:"role"`
	CanCreateCashbooks  bool            `json:"canCreateCashbooks"`
	CanArchiveCashbooks bool            `json:"canArchiveCashbooks"`
	PasswordHash        string          `json:"passwordHash"`
	CachedAt            time.Time       `json:"cachedAt"`
}

func identityFromUser(u *domain.User, at time.Time) *Identity {
	return &Identity{
		UserID:              u.UserID,
		FullName:            u.FullName,
		Phone:               u.Phone,
		Role:                u.Role,
		CanCreateCashbooks:  u.CanCreateCashbooks,
		CanArchiveCashbooks: u.CanArchiveCashbooks,
		PasswordHash:        u.PasswordHash,
		CachedAt:            at,
	}
}

// User converts the cached identity back into an actor.
func (i *Identity) User() domain.User {
	return domain.User{
		UserID:              i.UserID,
		FullName:            i.FullName,
		Phone:               i.Phone,
		Role:                i.Role,
		CanCreateCashbooks:  i.CanCreateCashbooks,
		CanArchiveCashbooks: i.CanArchiveCashbooks,
		PasswordHash:        i.PasswordHash,
	}
}

// Store persists at most one identity.
type Store interface {
	// Read returns nil without error when nothing is cached.
	Read() (*Identity, error)
	Write(id *Identity) error
	Clear() error
}

// FileStore keeps the identity as a JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Read() (*Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	if id.UserID == "" || id.Phone == "" {
		return nil, nil
	}
	return &id, nil
}

func (s *FileStore) Write(id *Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
