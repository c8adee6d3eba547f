// Package state is a small keyed subscribe/notify store. Components publish
// snapshots after mutating durable data; observers (CLI status output, the
// slides watcher) react to changes without holding references to each other.
package state

import (
	"sort"
	"sync"
)

// Well-known keys.
const (
	KeyProject  = "project"
	KeySegments = "segments"
	KeySlides   = "slides"
	KeyWorkflow = "workflow"
)

type Store struct {
	mu     sync.Mutex
	values map[string]interface{}
	subs   map[string]map[int]func(interface{})
	nextID int
}

func New() *Store {
	return &Store{
		values: make(map[string]interface{}),
		subs:   make(map[string]map[int]func(interface{})),
	}
}

// Get returns the current value for a key.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and notifies the key's subscribers in subscription order.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	s.values[key] = value

	ids := make([]int, 0, len(s.subs[key]))
	for id := range s.subs[key] {
		ids = append(ids, id)
	}
	// Map iteration order is random; deliver by ascending id.
	sort.Ints(ids)
	fns := make([]func(interface{}), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[key][id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Delete removes a key without notifying.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Subscribe registers a callback for a key and returns its unsubscribe func.
func (s *Store) Subscribe(key string, fn func(interface{})) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func(interface{}))
	}
	id := s.nextID
	s.nextID++
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}
}
