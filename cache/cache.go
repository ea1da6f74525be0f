package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

// FetchFunc performs the network read for a cache key.
type FetchFunc func(ctx context.Context) (any, error)

// ProvideFunc computes the tags a fetched payload provides.
type ProvideFunc func(payload any) []Tag

// MutateFunc performs a mutation and returns the server's canonical result.
type MutateFunc func(ctx context.Context) (any, error)

// InvalidateFunc computes the tags a completed mutation invalidates.
type InvalidateFunc func(result any) []Tag

// entryMeta tracks the generation and staleness of one cache key. seq is the
// issuance sequence of the most recently authorized fetch; any response
// carrying an older sequence is discarded on arrival.
type entryMeta struct {
	seq   uint64
	stale bool
	tags  []Tag
}

// Store is the cache/invalidation layer. Payloads live in a TTL'd store;
// staleness, sequencing and the tag index are layered on top. At most one
// fetch per key is in flight at a time; concurrent readers share it.
type Store struct {
	mu       sync.Mutex
	payloads *gocache.Cache
	meta     map[string]*entryMeta
	tagIndex map[Tag]map[string]struct{}
	flight   singleflight.Group

	listenerMu sync.RWMutex
	listeners  []Listener

	log zerolog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithTTL bounds how long an un-invalidated payload is served. Zero disables
// expiry; invalidation is the primary freshness mechanism either way.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl <= 0 {
			s.payloads = gocache.New(gocache.NoExpiration, 0)
			return
		}
		s.payloads = gocache.New(ttl, 2*ttl)
	}
}

// WithLogger sets the cache logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates an empty cache store.
func New(options ...Option) *Store {
	s := &Store{
		payloads: gocache.New(gocache.NoExpiration, 0),
		meta:     make(map[string]*entryMeta),
		tagIndex: make(map[Tag]map[string]struct{}),
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Subscribe registers a lifecycle listener. Listeners are called
// synchronously in subscription order.
func (s *Store) Subscribe(l Listener) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Read returns the cached payload for key, fetching it when absent or stale.
// Concurrent reads of the same key share a single network call. A cancelled
// caller context abandons the wait without cancelling the shared flight; the
// result is still stored for later readers.
func (s *Store) Read(ctx context.Context, key Key, fetch FetchFunc, provides ProvideFunc) (any, error) {
	ks := key.String()

	s.mu.Lock()
	if meta, ok := s.meta[ks]; ok && !meta.stale {
		if payload, found := s.payloads.Get(ks); found {
			s.mu.Unlock()
			return payload, nil
		}
	}
	s.mu.Unlock()

	ch := s.flight.DoChan(ks, func() (any, error) {
		return s.fetchAndStore(ctx, key, fetch, provides)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (s *Store) fetchAndStore(callerCtx context.Context, key Key, fetch FetchFunc, provides ProvideFunc) (any, error) {
	ks := key.String()

	s.mu.Lock()
	meta := s.ensureLocked(ks)
	meta.seq++
	seq := meta.seq
	s.mu.Unlock()

	s.emit(Event{Op: OpRead, Phase: PhasePending, Resource: key.Resource, Key: key})

	// The flight is shared by every concurrent reader of this key, so it
	// must outlive the first caller's context.
	payload, err := fetch(context.WithoutCancel(callerCtx))
	if err != nil {
		s.emit(Event{Op: OpRead, Phase: PhaseRejected, Resource: key.Resource, Key: key, Err: err})
		return nil, err
	}

	s.mu.Lock()
	meta = s.ensureLocked(ks)
	if meta.seq != seq {
		s.mu.Unlock()
		s.log.Debug().Str("key", ks).Msg("discarding superseded fetch result")
		return nil, interrors.ErrFetchSuperseded
	}
	meta.stale = false
	if provides != nil {
		s.retagLocked(ks, meta, provides(payload))
	}
	s.payloads.Set(ks, payload, gocache.DefaultExpiration)
	s.mu.Unlock()

	s.emit(Event{Op: OpRead, Phase: PhaseFulfilled, Resource: key.Resource, Key: key, Payload: payload})
	return payload, nil
}

// Mutate runs a mutation and, on success, invalidates the tags it affects.
// Matching cache keys are marked stale and refetched on their next read.
func (s *Store) Mutate(ctx context.Context, resource string, mutate MutateFunc, invalidates InvalidateFunc) (any, error) {
	s.emit(Event{Op: OpMutation, Phase: PhasePending, Resource: resource})

	result, err := mutate(ctx)
	if err != nil {
		s.emit(Event{Op: OpMutation, Phase: PhaseRejected, Resource: resource, Err: err})
		return nil, err
	}

	if invalidates != nil {
		s.Invalidate(invalidates(result)...)
	}
	s.emit(Event{Op: OpMutation, Phase: PhaseFulfilled, Resource: resource, Payload: result})
	return result, nil
}

// Invalidate marks every cache key whose provided tags intersect tags as
// stale. In-flight fetches for those keys are superseded: their results are
// discarded on arrival.
func (s *Store) Invalidate(tags ...Tag) {
	s.mu.Lock()
	keys := make(map[string]struct{})
	for _, tag := range tags {
		for ks := range s.tagIndex[tag] {
			keys[ks] = struct{}{}
		}
	}
	for ks := range keys {
		meta := s.ensureLocked(ks)
		meta.stale = true
		meta.seq++
	}
	s.mu.Unlock()

	for ks := range keys {
		s.flight.Forget(ks)
	}
	if len(keys) > 0 {
		s.log.Debug().Int("keys", len(keys)).Int("tags", len(tags)).Msg("invalidated cache keys")
	}
}

// Reset drops every cached payload and all tag associations. Used on logout
// so no data from one session leaks into the next.
func (s *Store) Reset() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.meta))
	for ks := range s.meta {
		keys = append(keys, ks)
	}
	s.meta = make(map[string]*entryMeta)
	s.tagIndex = make(map[Tag]map[string]struct{})
	s.payloads.Flush()
	s.mu.Unlock()

	for _, ks := range keys {
		s.flight.Forget(ks)
	}
}

func (s *Store) ensureLocked(ks string) *entryMeta {
	meta, ok := s.meta[ks]
	if !ok {
		meta = &entryMeta{}
		s.meta[ks] = meta
	}
	return meta
}

func (s *Store) retagLocked(ks string, meta *entryMeta, tags []Tag) {
	for _, tag := range meta.tags {
		if set, ok := s.tagIndex[tag]; ok {
			delete(set, ks)
			if len(set) == 0 {
				delete(s.tagIndex, tag)
			}
		}
	}
	meta.tags = tags
	for _, tag := range tags {
		set, ok := s.tagIndex[tag]
		if !ok {
			set = make(map[string]struct{})
			s.tagIndex[tag] = set
		}
		set[ks] = struct{}{}
	}
}

func (s *Store) emit(ev Event) {
	s.listenerMu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}
