// Package store projects cache lifecycle events into conventional
// read-models (list, selected item, loading flag, last error) for views.
// Slices are purely reactive: they never originate a fetch or mutation.
package store

import (
	"sync"

	"github.com/cafehub/go-admin-client/cache"
)

// Slice mirrors one resource type. List reads replace the list wholesale;
// single-item mutations replace the matching entry by id. Deletes change
// nothing here — the cache's list invalidation triggers a fresh list fetch
// that omits the deleted item.
type Slice[T any] struct {
	mu           sync.RWMutex
	itemResource string
	listResource string
	id           func(T) int64

	items     []T
	selected  *T
	loading   bool
	lastError string
}

// NewSlice creates a slice reacting to events for the given item and list
// resource names. id extracts a record's identity.
func NewSlice[T any](itemResource, listResource string, id func(T) int64) *Slice[T] {
	return &Slice[T]{
		itemResource: itemResource,
		listResource: listResource,
		id:           id,
	}
}

// Apply folds one cache event into the read-model. Events for other
// resources are ignored.
func (s *Slice[T]) Apply(ev cache.Event) {
	if ev.Resource != s.itemResource && ev.Resource != s.listResource {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Phase {
	case cache.PhasePending:
		s.loading = true
		s.lastError = ""

	case cache.PhaseRejected:
		s.loading = false
		if ev.Err != nil {
			s.lastError = ev.Err.Error()
		} else {
			s.lastError = "request failed"
		}

	case cache.PhaseFulfilled:
		s.loading = false
		switch payload := ev.Payload.(type) {
		case []T:
			// Wholesale replace, no diffing.
			s.items = payload
		case *T:
			if payload == nil {
				return
			}
			if ev.Op == cache.OpRead {
				v := *payload
				s.selected = &v
				return
			}
			s.upsert(*payload)
		case T:
			if ev.Op == cache.OpRead {
				v := payload
				s.selected = &v
				return
			}
			s.upsert(payload)
		}
	}
}

func (s *Slice[T]) upsert(item T) {
	id := s.id(item)
	replaced := false
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, item)
	}
	if s.selected != nil && s.id(*s.selected) == id {
		v := item
		s.selected = &v
	}
}

// Items returns a copy of the current list.
func (s *Slice[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Selected returns the selected item, if any.
func (s *Slice[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// Select marks an item as selected for viewing or editing.
func (s *Slice[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := item
	s.selected = &v
}

// ClearSelected drops the selection.
func (s *Slice[T]) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// IsLoading reports whether a request for this resource is outstanding.
func (s *Slice[T]) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent failure message, "" when none.
func (s *Slice[T]) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
