// Package store owns persistence of the current session credential and user
// profile. It is pure local storage: no network access, survives process
// restarts, and is scoped to the current OS user.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/paharpur/siteadmin/internal/client/models"
)

// Store is the credential storage contract.
//
// Invariant: token and profile are written and removed together. There is
// never a persisted state with a profile but no token, or vice versa.
type Store interface {
	// Save persists the token/profile pair atomically.
	Save(token string, profile *models.UserProfile) error

	// Load returns the stored pair. An empty token means no session is
	// stored; a missing state file is not an error.
	Load() (string, *models.UserProfile, error)

	// Clear removes both fields in one operation. Clearing an already
	// empty store is a no-op.
	Clear() error
}

// state is the on-disk layout, mirroring what the web dashboard kept in
// localStorage: the token, the serialized user and an authenticated flag.
type state struct {
	Token         string              `json:"token"`
	User          *models.UserProfile `json:"user"`
	Authenticated bool                `json:"authenticated"`
}

// FileStore keeps the session state in a single JSON file. Writes go
// through a temp file plus rename so the token/profile pair is replaced
// atomically.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the session file location under the user config dir,
// e.g. ~/.config/siteadmin/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "siteadmin", "session.json"), nil
}

func (s *FileStore) Save(token string, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(state{Token: token, User: profile, Authenticated: true})
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session state: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod session state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session state: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename session state: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (string, *models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("read session state: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt state file is treated as no session rather than a
		// fatal error; the user can simply log in again.
		return "", nil, nil
	}
	if st.Token == "" || st.User == nil {
		return "", nil, nil
	}
	return st.Token, st.User, nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}
