// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"sync"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/picker"
)

var ErrAlreadySpinning = errors.New("already spinning")

// State of a Session: Idle → Spinning → Idle.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	if s == Spinning {
		return "spinning"
	}
	return "idle"
}

// Session is the per-user client state the Controller operates on.
type Session struct {
	mu      sync.Mutex
	active  string
	state   State
	lists   models.GameList
	rules   *picker.Rules
	offline bool
}

func NewSession(activeList string) *Session {
	return &Session{active: activeList}
}

func (s *Session) ActiveList() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Lists returns a copy of the cached lists, nil before Load.
func (s *Session) Lists() models.GameList {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists == nil {
		return nil
	}
	return s.lists.Clone()
}

// Offline reports whether the last Load was served from the local cache.
func (s *Session) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

func (s *Session) loaded(lists models.GameList, rules *picker.Rules, offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = lists
	s.rules = rules
	s.offline = offline
}

func (s *Session) beginSpin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Spinning {
		return ErrAlreadySpinning
	}
	s.state = Spinning
	return nil
}

func (s *Session) endSpin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Idle
}
