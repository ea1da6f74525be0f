package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
	interrors "github.com/cafehub/go-admin-client/internal/errors"
	"github.com/cafehub/go-admin-client/store"
)

func newBrandSlice() *store.Slice[api.Brand] {
	return store.NewSlice(cache.ResourceBrand, cache.ResourceBrands,
		func(b api.Brand) int64 { return b.ID })
}

func listEvent(brands []api.Brand) cache.Event {
	return cache.Event{
		Op:       cache.OpRead,
		Phase:    cache.PhaseFulfilled,
		Resource: cache.ResourceBrands,
		Payload:  brands,
	}
}

func TestListFulfilmentReplacesItemsWholesale(t *testing.T) {
	s := newBrandSlice()

	s.Apply(listEvent([]api.Brand{{ID: 1, Name: "Nordic Roast"}, {ID: 2, Name: "Beanhouse"}}))
	require.Len(t, s.Items(), 2)

	s.Apply(listEvent([]api.Brand{{ID: 2, Name: "Beanhouse"}}))
	items := s.Items()
	require.Len(t, items, 1)
	require.EqualValues(t, 2, items[0].ID)
}

func TestPendingSetsLoadingAndClearsError(t *testing.T) {
	s := newBrandSlice()

	s.Apply(cache.Event{Op: cache.OpRead, Phase: cache.PhaseRejected, Resource: cache.ResourceBrands, Err: interrors.ErrServer})
	require.NotEmpty(t, s.LastError())
	require.False(t, s.IsLoading())

	s.Apply(cache.Event{Op: cache.OpRead, Phase: cache.PhasePending, Resource: cache.ResourceBrands})
	require.True(t, s.IsLoading())
	require.Empty(t, s.LastError())
}

func TestSingleItemReadSelects(t *testing.T) {
	s := newBrandSlice()
	brand := api.Brand{ID: 7, Name: "Nordic Roast"}

	s.Apply(cache.Event{Op: cache.OpRead, Phase: cache.PhaseFulfilled, Resource: cache.ResourceBrand, Payload: &brand})

	selected, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, "Nordic Roast", selected.Name)
	require.Empty(t, s.Items(), "a single-item read must not touch the list")
}

func TestMutationUpsertsIntoListAndSelection(t *testing.T) {
	s := newBrandSlice()
	s.Apply(listEvent([]api.Brand{{ID: 1, Name: "Nordic Roast"}, {ID: 2, Name: "Beanhouse"}}))
	s.Select(api.Brand{ID: 2, Name: "Beanhouse"})

	updated := api.Brand{ID: 2, Name: "Beanhouse & Co"}
	s.Apply(cache.Event{Op: cache.OpMutation, Phase: cache.PhaseFulfilled, Resource: cache.ResourceBrand, Payload: &updated})

	items := s.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Beanhouse & Co", items[1].Name)

	selected, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, "Beanhouse & Co", selected.Name)
}

func TestMutationAppendsUnknownItem(t *testing.T) {
	s := newBrandSlice()
	s.Apply(listEvent([]api.Brand{{ID: 1, Name: "Nordic Roast"}}))

	created := api.Brand{ID: 9, Name: "Beanhouse"}
	s.Apply(cache.Event{Op: cache.OpMutation, Phase: cache.PhaseFulfilled, Resource: cache.ResourceBrand, Payload: created})

	items := s.Items()
	require.Len(t, items, 2)
	require.EqualValues(t, 9, items[1].ID)
}

func TestEventsForOtherResourcesAreIgnored(t *testing.T) {
	s := newBrandSlice()

	s.Apply(cache.Event{
		Op:       cache.OpRead,
		Phase:    cache.PhaseFulfilled,
		Resource: cache.ResourceLocations,
		Payload:  []api.Location{{ID: 1}},
	})
	s.Apply(cache.Event{Op: cache.OpRead, Phase: cache.PhasePending, Resource: cache.ResourceUsers})

	require.Empty(t, s.Items())
	require.False(t, s.IsLoading())
}

func TestClearSelected(t *testing.T) {
	s := newBrandSlice()
	s.Select(api.Brand{ID: 1})

	_, ok := s.Selected()
	require.True(t, ok)

	s.ClearSelected()
	_, ok = s.Selected()
	require.False(t, ok)
}
