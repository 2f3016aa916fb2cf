package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"braindrop/models"
)

// statusTTL is how long a status notification stays up before it clears
// itself.
const statusTTL = 4 * time.Second

// cmdStartDownload launches a full download in the background. Progress
// and completion arrive over the model's download channel; pair this
// with cmdAwaitDownload to relay them into the update loop.
func (m *mainModel) cmdStartDownload() tea.Cmd {
	ch := make(chan tea.Msg, 8)
	m.downloadCh = ch
	m.downloading = true
	m.downloadCount = 0

	ctx, syncSvc, dataSvc := m.ctx, m.sync, m.data
	go func() {
		err := syncSvc.Download(ctx, func(count int) {
			ch <- downloadProgressMsg{count: count}
		})
		if err == nil {
			err = dataSvc.Load(ctx)
		}
		ch <- downloadDoneMsg{err: err}
		close(ch)
	}()

	return tea.Batch(m.cmdAwaitDownload(), m.spinner.Tick)
}

// cmdAwaitDownload relays the next message from the running download.
func (m *mainModel) cmdAwaitDownload() tea.Cmd {
	ch := m.downloadCh
	return func() tea.Msg {
		return <-ch
	}
}

func (m *mainModel) cmdSave(draft models.Raindrop) tea.Cmd {
	ctx, dataSvc := m.ctx, m.data
	return func() tea.Msg {
		var (
			saved models.Raindrop
			err   error
		)
		if draft.IsBrandNew() {
			saved, err = dataSvc.Add(ctx, draft)
		} else {
			saved, err = dataSvc.Update(ctx, draft)
		}
		return raindropSavedMsg{raindrop: saved, err: err}
	}
}

func (m *mainModel) cmdDelete(raindrop models.Raindrop) tea.Cmd {
	ctx, dataSvc := m.ctx, m.data
	return func() tea.Msg {
		return raindropDeletedMsg{err: dataSvc.Delete(ctx, raindrop)}
	}
}

func (m *mainModel) cmdSuggestions(link string) tea.Cmd {
	ctx, dataSvc := m.ctx, m.data
	return func() tea.Msg {
		suggestions, err := dataSvc.Suggestions(ctx, models.Raindrop{Link: link})
		return suggestionsMsg{link: link, suggestions: suggestions, err: err}
	}
}

func (m *mainModel) cmdWayback(link string) tea.Cmd {
	ctx, wayback := m.ctx, m.wayback
	return func() tea.Msg {
		available, err := wayback.HasSnapshot(ctx, link)
		return waybackMsg{link: link, available: available, err: err}
	}
}

func cmdCopyLink(link string) tea.Cmd {
	return func() tea.Msg {
		return linkCopiedMsg{err: clipboard.WriteAll(link)}
	}
}

func cmdOpenLink(link string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{err: openInBrowser(link)}
	}
}

// cmdClearStatusLater schedules the status line to clear, tied to the
// status generation that is up right now.
func (m *mainModel) cmdClearStatusLater() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
