// Package session keeps the current session and per-user preference records
// in the client's local key/value store.
//
// Reads are self-healing: a stored value that cannot be decoded is removed
// and reported as absent, never as an error. Errors returned by this package
// come from the storage backend only. Every write replaces a whole record.
//
// There is no cross-process coordination. Two CLIs sharing one store file
// follow last-write-wins.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sitegate/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/sitegate/internal/logging"
)

// Storage keys.
const (
	SessionKey       = "currentUser"
	PreferencePrefix = "prefs_"
	GlobalThemeKey   = "etago_theme"
	globalThemeLight = "light"
	globalThemeDark  = "dark"
)

var (
	errNotObject     = errors.New("not a JSON object")
	errEmptyUsername = errors.New("session has no username")
)

// PreferenceKey is the storage key of username's preference record.
func PreferenceKey(username string) string { return PreferencePrefix + username }

type Store struct {
	repo   localstorage.Repository
	logger logging.Logger
}

func NewStore(repo localstorage.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{repo: repo, logger: logger}
}

// ReadSession returns the current session, or nil when nobody is logged in
// or the stored record was corrupt (in which case it is deleted).
func (s *Store) ReadSession(ctx context.Context) (*Session, error) {
	raw, ok, err := s.repo.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	sess, err := decodeSession(raw)
	if err != nil {
		s.logger.Warn(ctx, "bad session record, clearing", "key", SessionKey, "error", err)
		if err := s.repo.Delete(ctx, SessionKey); err != nil {
			return nil, fmt.Errorf("clear corrupt session: %w", err)
		}
		return nil, nil
	}
	return sess, nil
}

func decodeSession(raw string) (*Session, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	if sess.Username == "" {
		return nil, errEmptyUsername
	}
	if sess.Dashboards == nil {
		sess.Dashboards = []string{}
	}
	return &sess, nil
}

// WriteSession replaces the stored session with sess.
func (s *Store) WriteSession(ctx context.Context, sess Session) error {
	if sess.Dashboards == nil {
		sess.Dashboards = []string{}
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, SessionKey, string(data)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the stored session. Clearing when logged out is a no-op.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ReadPreference returns username's preference record, or nil when none is
// stored or the stored value was corrupt (and has been deleted).
func (s *Store) ReadPreference(ctx context.Context, username string) (*Preference, error) {
	key := PreferenceKey(username)
	raw, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read preference: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var p Preference
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn(ctx, "bad prefs record, clearing", "key", key, "error", err)
		if err := s.repo.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("clear corrupt preference: %w", err)
		}
		return nil, nil
	}
	return &p, nil
}

// WritePreference replaces username's preference record.
func (s *Store) WritePreference(ctx context.Context, username string, p Preference) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preference: %w", err)
	}
	if err := s.repo.Set(ctx, PreferenceKey(username), string(data)); err != nil {
		return fmt.Errorf("write preference: %w", err)
	}
	return nil
}

// ReadGlobalTheme returns the last effective theme seen on this client,
// "light" or "dark", or "" when nothing usable is stored.
func (s *Store) ReadGlobalTheme(ctx context.Context) (string, error) {
	raw, _, err := s.repo.Get(ctx, GlobalThemeKey)
	if err != nil {
		return "", fmt.Errorf("read global theme: %w", err)
	}
	if raw == globalThemeLight || raw == globalThemeDark {
		return raw, nil
	}
	return "", nil
}

// WriteGlobalTheme stores an effective theme value. Only "light" and "dark"
// are accepted.
func (s *Store) WriteGlobalTheme(ctx context.Context, value string) error {
	if value != globalThemeLight && value != globalThemeDark {
		return fmt.Errorf("write global theme: %q is not an effective theme", value)
	}
	if err := s.repo.Set(ctx, GlobalThemeKey, value); err != nil {
		return fmt.Errorf("write global theme: %w", err)
	}
	return nil
}
