// Package session holds the client-side authentication state: the bearer token and the cached profile of the logged in account.
//
// A Session is created once by the application's composition root and shared by pointer, so a logout triggered by
// one API call is seen by every other holder. All methods are safe for concurrent use.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Keys are the storage keys the session is persisted under.
type Keys struct {
	Token    string
	UserInfo string
}

var (
	// UserKeys are used by the end-user (mini-program) surface
	UserKeys = Keys{Token: "token", UserInfo: "userInfo"}

	// AdminKeys are used by the admin dashboard
	AdminKeys = Keys{Token: "admin_token", UserInfo: "adminInfo"}
)

type Session struct {
	mu       sync.RWMutex
	store    Store
	keys     Keys
	token    string
	userInfo json.RawMessage
}

// New returns an empty, unauthenticated session backed by store. Call Restore to load a previously persisted session.
func New(store Store, keys Keys) *Session {
	return &Session{
		store: store,
		keys:  keys,
	}
}

// Restore loads the token and profile from the store. Missing keys leave the corresponding field empty.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.store.Load(s.keys.Token)
	if err != nil {
		return fmt.Errorf("loading token: %w", err)
	}
	if found {
		var token string
		if err := json.Unmarshal(raw, &token); err != nil {
			return fmt.Errorf("decoding stored token: %w", err)
		}
		s.token = token
	}

	raw, found, err = s.store.Load(s.keys.UserInfo)
	if err != nil {
		return fmt.Errorf("loading user info: %w", err)
	}
	if found && !isNull(raw) {
		s.userInfo = raw
	}

	return nil
}

// Login records a successful login exchange: both the token and the profile are replaced and persisted.
func (s *Session) Login(token string, userInfo any) error {
	info, err := encodeUserInfo(userInfo)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.token
	if err := s.persistToken(token); err != nil {
		return err
	}
	if err := s.persistUserInfo(info); err != nil {
		if rbErr := s.persistToken(previous); rbErr != nil {
			return errors.Join(err, fmt.Errorf("restoring previous token: %w", rbErr))
		}
		return err
	}
	return nil
}

// SetToken replaces the bearer token and persists it
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persistToken(token)
}

// SetUserInfo replaces the cached profile and persists it. A nil userInfo clears the profile.
func (s *Session) SetUserInfo(userInfo any) error {
	info, err := encodeUserInfo(userInfo)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persistUserInfo(info)
}

// UpdateUserInfo applies fn to the cached profile as a JSON object and persists the result.
// It is a no-op when there is no cached profile.
func (s *Session) UpdateUserInfo(fn func(info map[string]any)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userInfo == nil {
		return nil
	}

	var info map[string]any
	if err := json.Unmarshal(s.userInfo, &info); err != nil {
		return fmt.Errorf("cached user info is not an object: %w", err)
	}
	fn(info)

	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding user info: %w", err)
	}
	return s.persistUserInfo(b)
}

// Logout clears the token and profile from memory and from the store.
// In-memory state is always cleared. A key the store cannot remove is overwritten with an empty value so that
// Restore does not bring the session back; an error is returned only when both fail.
// Calling Logout on an empty session is a no-op.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.userInfo = nil

	return errors.Join(
		s.clearKey(s.keys.Token, []byte(`""`)),
		s.clearKey(s.keys.UserInfo, []byte("null")),
	)
}

func (s *Session) clearKey(key string, empty []byte) error {
	err := s.store.Remove(key)
	if err == nil {
		return nil
	}
	if perr := s.store.Persist(key, empty); perr != nil {
		return fmt.Errorf("clearing %s: %w", key, errors.Join(err, perr))
	}
	return nil
}

// Token returns the current bearer token, empty when unauthenticated
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserInfo returns a copy of the cached profile, nil when there is none
func (s *Session) UserInfo() json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userInfo == nil {
		return nil
	}
	return bytes.Clone(s.userInfo)
}

// DecodeUserInfo unmarshals the cached profile into v. It returns false when there is no cached profile.
func (s *Session) DecodeUserInfo(v any) (bool, error) {
	info := s.UserInfo()
	if info == nil {
		return false, nil
	}
	if err := json.Unmarshal(info, v); err != nil {
		return true, fmt.Errorf("decoding user info: %w", err)
	}
	return true, nil
}

func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

func (s *Session) persistToken(token string) error {
	b, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := s.store.Persist(s.keys.Token, b); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	s.token = token
	return nil
}

// persistUserInfo writes info to the store and updates memory only once the write succeeded
func (s *Session) persistUserInfo(info json.RawMessage) error {
	if info == nil {
		if err := s.store.Remove(s.keys.UserInfo); err != nil {
			return fmt.Errorf("removing user info: %w", err)
		}
	} else if err := s.store.Persist(s.keys.UserInfo, info); err != nil {
		return fmt.Errorf("persisting user info: %w", err)
	}
	s.userInfo = info
	return nil
}

func encodeUserInfo(userInfo any) (json.RawMessage, error) {
	switch v := userInfo.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		if isNull(v) {
			return nil, nil
		}
		return bytes.Clone(v), nil
	}

	b, err := json.Marshal(userInfo)
	if err != nil {
		return nil, fmt.Errorf("encoding user info: %w", err)
	}
	if isNull(b) {
		return nil, nil
	}
	return b, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
