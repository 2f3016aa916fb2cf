package client

import (
	"context"
	"errors"
	"fmt"

	"braindrop/internal/adapter"
	"braindrop/internal/logger"
	"braindrop/internal/service"
	"braindrop/internal/store"
	"braindrop/internal/tui"
)

var _ Client = (*App)(nil)

// App is the braindrop client application: token bootstrap, local cache
// warm-up, the main TUI loop, and the logout cycle.
type App struct {
	storages *store.Storages
	api      adapter.RaindropAPI
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(
	storages *store.Storages,
	api adapter.RaindropAPI,
	services *service.Services,
	ui *tui.TUI,
	log *logger.Logger,
) (*App, error) {
	return &App{
		storages: storages,
		api:      api,
		services: services,
		tui:      ui,
		logger:   log,
	}, nil
}

// Run starts the client and blocks until the user quits. A logout wipes
// the local cache and the saved token, then starts over with the token
// prompt.
func (a *App) Run() error {
	ctx := context.Background()

	if a.api.Token() == "" {
		token, err := a.storages.Token.Load()
		if errors.Is(err, store.ErrNoToken) {
			token, err = a.tui.TokenFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("token flow: %w", err)
			}
			if saveErr := a.storages.Token.Save(token); saveErr != nil {
				a.logger.Warn().Err(saveErr).Msg("could not save the token, it will be asked for again next run")
			}
		} else if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		a.api.SetToken(token)
	}

	if err := a.services.Data.Load(ctx); err != nil {
		return fmt.Errorf("load local cache: %w", err)
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.logger.Info().Msg("logging out, wiping the local cache and token")
		if err := a.services.Data.Wipe(ctx); err != nil {
			return fmt.Errorf("wipe local cache: %w", err)
		}
		if err := a.storages.Token.Delete(); err != nil {
			return fmt.Errorf("remove token: %w", err)
		}
		a.api.SetToken("")
		return a.Run()
	}

	return nil
}
