// Package console is the application-facing surface of the SDK: every read
// goes through the cache/invalidation layer and every mutation declares the
// tags it affects, so dependent reads refetch automatically.
package console

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
	"github.com/cafehub/go-admin-client/session"
)

// Console binds the request layer, the cache layer and the session store.
type Console struct {
	api     *api.Client
	cache   *cache.Store
	session *session.Store
	log     zerolog.Logger
}

// Option configures the Console.
type Option func(*Console)

// WithLogger sets the console logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// New creates a Console from its dependencies.
func New(apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store, options ...Option) (*Console, error) {
	if apiClient == nil {
		return nil, errors.New("[console.New] api client is required")
	}
	if cacheStore == nil {
		return nil, errors.New("[console.New] cache store is required")
	}
	if sessionStore == nil {
		return nil, errors.New("[console.New] session store is required")
	}

	c := &Console{
		api:     apiClient,
		cache:   cacheStore,
		session: sessionStore,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Cache exposes the underlying cache store (for subscriptions).
func (c *Console) Cache() *cache.Store { return c.cache }

// Session exposes the underlying session store.
func (c *Console) Session() *session.Store { return c.session }

// Auth returns the authentication operations.
func (c *Console) Auth() *Auth { return &Auth{c} }

// Brands returns the cached brand operations.
func (c *Console) Brands() *Brands { return &Brands{c} }

// Locations returns the cached location operations.
func (c *Console) Locations() *Locations { return &Locations{c} }

// Menu returns the cached menu operations.
func (c *Console) Menu() *Menu { return &Menu{c} }

// Users returns the cached user operations.
func (c *Console) Users() *Users { return &Users{c} }

// read funnels a typed fetch through the cache layer.
func read[T any](ctx context.Context, cs *cache.Store, key cache.Key, fetch func(context.Context) (T, error), provides func(T) []cache.Tag) (T, error) {
	payload, err := cs.Read(ctx, key,
		func(ctx context.Context) (any, error) { return fetch(ctx) },
		func(p any) []cache.Tag { return provides(p.(T)) },
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return payload.(T), nil
}

// mutate funnels a typed mutation through the cache layer.
func mutate[T any](ctx context.Context, cs *cache.Store, resource string, run func(context.Context) (T, error), invalidates func(T) []cache.Tag) (T, error) {
	result, err := cs.Mutate(ctx, resource,
		func(ctx context.Context) (any, error) { return run(ctx) },
		func(res any) []cache.Tag { return invalidates(res.(T)) },
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// mutateVoid runs a mutation that returns no body (deletes, assignments)
// and invalidates a fixed tag set on success.
func mutateVoid(ctx context.Context, cs *cache.Store, resource string, run func(context.Context) error, tags ...cache.Tag) error {
	_, err := cs.Mutate(ctx, resource,
		func(ctx context.Context) (any, error) { return nil, run(ctx) },
		func(any) []cache.Tag { return tags },
	)
	return err
}
