package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
	"github.com/cafehub/go-admin-client/console"
	"github.com/cafehub/go-admin-client/guard"
	"github.com/cafehub/go-admin-client/internal/config"
	"github.com/cafehub/go-admin-client/session"
	"github.com/cafehub/go-admin-client/session/keyring"
	"github.com/cafehub/go-admin-client/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running console: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}
	displayAppname(c.AppName)

	logger, err := newLogger(c.LogLevel)
	if err != nil {
		return err
	}

	var kr keyring.Keyring
	if c.KeyringDir != "" {
		fileKeyring, err := keyring.NewFileKeyring(c.KeyringDir)
		if err != nil {
			logger.Warn().Err(err).Msg("keyring unavailable, session will not persist")
		} else {
			kr = fileKeyring
		}
	}
	sess := session.NewStore(kr, session.WithLogger(logger))

	apiClient, err := api.NewClient(c.APIBaseURL, sess.TokenSource(),
		api.WithTimeout(c.HTTPTimeout),
		api.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("api.NewClient: %w", err)
	}

	cacheStore := cache.New(cache.WithTTL(c.CacheTTL), cache.WithLogger(logger))
	adminConsole, err := console.New(apiClient, cacheStore, sess, console.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("console.New: %w", err)
	}
	readModels := store.New(cacheStore)

	routeGuard, err := guard.New(sess, apiClient.Auth(), guard.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("guard.New: %w", err)
	}

	ctx := context.Background()
	state := routeGuard.Hydrate(ctx)
	logger.Info().Stringer("state", state).Msg("session hydrated")

	if state != guard.StateAuthenticated && c.Email != "" {
		if err := adminConsole.Auth().SignIn(ctx, api.SignInCredentials{Email: c.Email, Password: c.Password}); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		state = routeGuard.Resume()
	}
	if state != guard.StateAuthenticated {
		if target, redirect := routeGuard.Redirect(guard.RootPath); redirect {
			logger.Info().Str("to", target).Msg("sign in required")
		}
		return nil
	}

	if _, err := adminConsole.Brands().List(ctx); err != nil {
		return fmt.Errorf("list brands: %w", err)
	}
	for _, brand := range readModels.Brands.Items() {
		logger.Info().Int64("id", brand.ID).Str("name", brand.Name).Msg("brand")
	}
	return nil
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger(), nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
