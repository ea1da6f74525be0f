package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cafehub/go-admin-client/cache"
	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

type countingFetch struct {
	calls   atomic.Int64
	payload any
	err     error

	started chan struct{} // closed once per call start, when set
	release chan struct{} // fetch blocks until closed, when set
}

func (f *countingFetch) fn(context.Context) (any, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.payload, f.err
}

func brandTags(any) []cache.Tag {
	return []cache.Tag{
		cache.ItemTag(cache.ResourceBrand, 7),
		cache.ListTag(cache.ResourceBrands),
	}
}

func TestReadCachesPayload(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{payload: "brands-v1"}
	key := cache.ListKey(cache.ResourceBrands)

	for i := 0; i < 3; i++ {
		payload, err := s.Read(context.Background(), key, fetch.fn, brandTags)
		require.NoError(t, err)
		require.Equal(t, "brands-v1", payload)
	}
	require.EqualValues(t, 1, fetch.calls.Load())
}

func TestConcurrentReadsShareOneFetch(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{payload: "shared", release: make(chan struct{})}
	key := cache.ListKey(cache.ResourceBrands)

	type result struct {
		payload any
		err     error
	}
	const readers = 8
	results := make(chan result, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, err := s.Read(context.Background(), key, fetch.fn, brandTags)
			results <- result{payload, err}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(fetch.release)
	wg.Wait()
	close(results)

	for res := range results {
		require.NoError(t, res.err)
		require.Equal(t, "shared", res.payload)
	}
	require.EqualValues(t, 1, fetch.calls.Load())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{payload: "v"}
	key := cache.ListKey(cache.ResourceBrands)

	_, err := s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)

	s.Invalidate(cache.ItemTag(cache.ResourceBrand, 7))

	_, err = s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)
	require.EqualValues(t, 2, fetch.calls.Load())
}

func TestInvalidateIgnoresUnrelatedTags(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{payload: "v"}
	key := cache.ListKey(cache.ResourceBrands)

	_, err := s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)

	s.Invalidate(cache.ItemTag(cache.ResourceBrand, 99), cache.ListTag(cache.ResourceLocations))

	_, err = s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)
	require.EqualValues(t, 1, fetch.calls.Load())
}

func TestInvalidationSupersedesInFlightFetch(t *testing.T) {
	s := cache.New()
	key := cache.ListKey(cache.ResourceBrands)

	seed := &countingFetch{payload: "v1"}
	_, err := s.Read(context.Background(), key, seed.fn, brandTags)
	require.NoError(t, err)
	s.Invalidate(cache.ListTag(cache.ResourceBrands))

	fetch := &countingFetch{
		payload: "stale-response",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	errCh := make(chan error, 1)
	go func() {
		_, err := s.Read(context.Background(), key, fetch.fn, brandTags)
		errCh <- err
	}()

	<-fetch.started
	s.Invalidate(cache.ListTag(cache.ResourceBrands))
	close(fetch.release)

	require.ErrorIs(t, <-errCh, interrors.ErrFetchSuperseded)

	// Neither the superseded payload nor the stale seed may be served.
	fresh := &countingFetch{payload: "fresh-response"}
	payload, err := s.Read(context.Background(), key, fresh.fn, brandTags)
	require.NoError(t, err)
	require.Equal(t, "fresh-response", payload)
}

func TestCancelledCallerDoesNotCancelSharedFlight(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{
		payload: "survives",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	key := cache.ListKey(cache.ResourceBrands)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.Read(ctx, key, fetch.fn, brandTags)
		errCh <- err
	}()

	<-fetch.started
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)

	close(fetch.release)
	require.Eventually(t, func() bool {
		payload, err := s.Read(context.Background(), key, fetch.fn, brandTags)
		return err == nil && payload == "survives" && fetch.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMutateInvalidatesOnSuccessOnly(t *testing.T) {
	s := cache.New()
	fetch := &countingFetch{payload: "v"}
	key := cache.ListKey(cache.ResourceBrands)

	_, err := s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)

	_, err = s.Mutate(context.Background(), cache.ResourceBrand,
		func(context.Context) (any, error) { return nil, interrors.ErrServer },
		func(any) []cache.Tag { return []cache.Tag{cache.ListTag(cache.ResourceBrands)} },
	)
	require.ErrorIs(t, err, interrors.ErrServer)

	_, err = s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)
	require.EqualValues(t, 1, fetch.calls.Load(), "failed mutation must not invalidate")

	_, err = s.Mutate(context.Background(), cache.ResourceBrand,
		func(context.Context) (any, error) { return "created", nil },
		func(any) []cache.Tag { return []cache.Tag{cache.ListTag(cache.ResourceBrands)} },
	)
	require.NoError(t, err)

	_, err = s.Read(context.Background(), key, fetch.fn, brandTags)
	require.NoError(t, err)
	require.EqualValues(t, 2, fetch.calls.Load())
}

func TestResetDropsAllEntries(t *testing.T) {
	s := cache.New()
	brandFetch := &countingFetch{payload: "brands"}
	userFetch := &countingFetch{payload: "users"}

	_, err := s.Read(context.Background(), cache.ListKey(cache.ResourceBrands), brandFetch.fn, brandTags)
	require.NoError(t, err)
	_, err = s.Read(context.Background(), cache.ListKey(cache.ResourceUsers), userFetch.fn, nil)
	require.NoError(t, err)

	s.Reset()

	_, err = s.Read(context.Background(), cache.ListKey(cache.ResourceBrands), brandFetch.fn, brandTags)
	require.NoError(t, err)
	_, err = s.Read(context.Background(), cache.ListKey(cache.ResourceUsers), userFetch.fn, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, brandFetch.calls.Load())
	require.EqualValues(t, 2, userFetch.calls.Load())
}

func TestLifecycleEventsEmittedInOrder(t *testing.T) {
	s := cache.New()
	var mu sync.Mutex
	var phases []cache.Phase
	s.Subscribe(func(ev cache.Event) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, ev.Phase)
	})

	fetch := &countingFetch{payload: "v"}
	_, err := s.Read(context.Background(), cache.ListKey(cache.ResourceBrands), fetch.fn, brandTags)
	require.NoError(t, err)

	failing := &countingFetch{err: interrors.ErrServer}
	_, err = s.Read(context.Background(), cache.ListKey(cache.ResourceUsers), failing.fn, nil)
	require.ErrorIs(t, err, interrors.ErrServer)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []cache.Phase{
		cache.PhasePending, cache.PhaseFulfilled,
		cache.PhasePending, cache.PhaseRejected,
	}, phases)
}

func TestListTagInvalidationReachesScopedLists(t *testing.T) {
	s := cache.New()
	listTags := func(any) []cache.Tag {
		return []cache.Tag{cache.ListTag(cache.ResourceLocations)}
	}

	plain := &countingFetch{payload: "all"}
	scoped := &countingFetch{payload: "brand-3"}
	_, err := s.Read(context.Background(), cache.ListKey(cache.ResourceLocations), plain.fn, listTags)
	require.NoError(t, err)
	_, err = s.Read(context.Background(), cache.ScopedListKey(cache.ResourceLocations, "brand", 3), scoped.fn, listTags)
	require.NoError(t, err)

	s.Invalidate(cache.ListTag(cache.ResourceLocations))

	_, err = s.Read(context.Background(), cache.ListKey(cache.ResourceLocations), plain.fn, listTags)
	require.NoError(t, err)
	_, err = s.Read(context.Background(), cache.ScopedListKey(cache.ResourceLocations, "brand", 3), scoped.fn, listTags)
	require.NoError(t, err)
	require.EqualValues(t, 2, plain.calls.Load())
	require.EqualValues(t, 2, scoped.calls.Load())
}

func TestScopedListKeyDistinctFromPlainList(t *testing.T) {
	plain := cache.ListKey(cache.ResourceLocations)
	scoped := cache.ScopedListKey(cache.ResourceLocations, "brand", 3)
	require.NotEqual(t, plain.String(), scoped.String())
	require.Equal(t, "Locations/LIST:brand:3", scoped.String())
}
