package tui

import "braindrop/models"

// startDownloadMsg kicks off a full download. Init emits it instead of
// starting the download itself so the download state lands on the model
// the program keeps, not on a copy Init was called on.
type startDownloadMsg struct{}

// downloadProgressMsg carries the running raindrop count while a full
// download is underway.
type downloadProgressMsg struct {
	count int
}

type downloadDoneMsg struct {
	err error
}

type raindropSavedMsg struct {
	raindrop models.Raindrop
	err      error
}

type raindropDeletedMsg struct {
	err error
}

// suggestionsMsg carries the server's tag suggestions for the link the
// form currently holds. The link is echoed back so a stale reply for a
// previously-entered URL can be dropped.
type suggestionsMsg struct {
	link        string
	suggestions models.Suggestions
	err         error
}

type waybackMsg struct {
	link      string
	available bool
	err       error
}

type linkCopiedMsg struct {
	err error
}

type linkOpenedMsg struct {
	err error
}

// refreshDueMsg is posted by the background sync job when the server
// holds newer data than the local cache.
type refreshDueMsg struct{}

// clearStatusMsg clears the status line. The sequence number ties it to
// the status it was scheduled for so a newer status is not wiped early.
type clearStatusMsg struct {
	seq int
}
