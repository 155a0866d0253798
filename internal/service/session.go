// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import "sync"

// session is an in-memory cache for the derived vault key. It holds the
// key for one authenticated user of one client instance; a second login
// replaces the key, so stale keys cannot leak across users.
type session struct {
	mu  sync.Mutex
	key []byte
}

// NewSession returns an empty session. Get fails until the first Set.
func NewSession() Session {
	return &session{}
}

func (s *session) Set(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wipeLocked()
	s.key = make([]byte, len(key))
	copy(s.key, key)
}

func (s *session) Get() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return nil, ErrNotAuthenticated
	}

	// Callers get a copy so they cannot zero or mutate the cached key.
	out := make([]byte, len(s.key))
	copy(out, s.key)
	return out, nil
}

func (s *session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wipeLocked()
}

// wipeLocked zeroes the key material before dropping the reference.
// Best effort: Go gives no guarantee about copies the GC has moved.
func (s *session) wipeLocked() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}
