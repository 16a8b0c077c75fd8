// Package visitor owns the persisted client identifier that scopes
// personalization and recommendation calls. The id is created lazily on
// first use, stays stable across restarts, and changes only through an
// explicit Set or Regenerate.
package visitor

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// Synthesize builds a fresh visitor id: visitor_<unix millis>_<9 random
// alphanumerics>. The format matches what the retail backend expects for
// anonymous visitors.
func Synthesize() string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(alphanumeric[rand.Intn(len(alphanumeric))])
	}
	return fmt.Sprintf("visitor_%d_%s", time.Now().UnixMilli(), b.String())
}

// Backend persists a single visitor id string. Load returns ("", nil)
// when no id has been stored yet.
type Backend interface {
	Load() (string, error)
	Save(id string) error
}

// Store is the identity provider injected into every visitor-scoped
// consumer. Mutation goes through Set, which notifies subscribers so
// they can re-fetch visitor-scoped data; anything in flight under the
// old id should be treated as stale.
type Store struct {
	mu      sync.Mutex
	backend Backend
	cached  string
	loaded  bool
	subs    map[int]func(string)
	nextSub int
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		subs:    make(map[int]func(string)),
	}
}

// GetOrCreate returns the persisted visitor id, synthesizing and
// persisting one first if none exists. Repeated calls without an
// intervening Set return the identical value.
func (s *Store) GetOrCreate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, nil
	}

	id, err := s.backend.Load()
	if err != nil {
		return "", fmt.Errorf("load visitor id: %w", err)
	}
	if id == "" {
		id = Synthesize()
		if err := s.backend.Save(id); err != nil {
			return "", fmt.Errorf("persist visitor id: %w", err)
		}
	}

	s.cached = id
	s.loaded = true
	return id, nil
}

// Set persists id and notifies subscribers of the change.
func (s *Store) Set(id string) error {
	s.mu.Lock()
	if err := s.backend.Save(id); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist visitor id: %w", err)
	}
	s.cached = id
	s.loaded = true
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return nil
}

// Regenerate replaces the current id with a freshly synthesized one.
func (s *Store) Regenerate() (string, error) {
	id := Synthesize()
	if err := s.Set(id); err != nil {
		return "", err
	}
	return id, nil
}

// Subscribe registers fn to run after every Set. The returned function
// cancels the subscription.
func (s *Store) Subscribe(fn func(string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
	}
}
