package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"braindrop/internal/adapter"
	"braindrop/internal/config"
	"braindrop/internal/logger"
	"braindrop/internal/service"
)

// ErrUserQuit is returned when the user leaves a flow instead of
// completing it.
var ErrUserQuit = errors.New("quit by user")

// TUI runs the terminal interface: the token prompt when no token is
// saved yet, and the main three-pane screen.
type TUI struct {
	services      *service.Services
	wayback       adapter.WaybackClient
	checkInterval time.Duration
	logger        *logger.Logger

	uiState     config.UIState
	uiStatePath string
}

func New(services *service.Services, wayback adapter.WaybackClient, checkInterval time.Duration, log *logger.Logger) (*TUI, error) {
	t := &TUI{
		services:      services,
		wayback:       wayback,
		checkInterval: checkInterval,
		logger:        log,
	}

	path, err := config.UIStatePath()
	if err != nil {
		log.Warn().Err(err).Msg("could not resolve the UI state path")
	} else {
		t.uiStatePath = path
	}
	t.uiState = config.LoadUIState(t.uiStatePath)

	return t, nil
}

// TokenFlow asks the user for a raindrop.io API token. It returns
// ErrUserQuit when the prompt is dismissed without entering one.
func (t *TUI) TokenFlow(ctx context.Context) (string, error) {
	program := tea.NewProgram(newTokenModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(tokenModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}
	return result.token, nil
}

// MainLoop runs the main screen until the user quits or logs out. The
// background sync job runs for the duration and nudges the screen when
// raindrop.io has newer data.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainModel(
		ctx,
		t.services,
		t.wayback,
		t.uiState,
		t.uiStatePath,
		t.needsDownload(ctx),
		t.logger,
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.SyncJob.Start(ctx, t.checkInterval, func() {
		program.Send(refreshDueMsg{})
	})
	defer t.services.SyncJob.Stop()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	t.uiState = result.uiState
	return result.logout, nil
}

// needsDownload decides whether the main screen should start with a full
// download: always on an empty cache, otherwise only when the server
// reports newer data. A failed staleness check falls back to the cache.
func (t *TUI) needsDownload(ctx context.Context) bool {
	if t.services.Data.LastDownloaded().IsZero() {
		return true
	}

	stale, err := t.services.Sync.NeedsRedownload(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Msg("could not check raindrop.io for newer data")
		return false
	}
	return stale
}
