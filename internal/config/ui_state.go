package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// UIState holds the interface settings that survive between sessions:
// which panes are visible, how the tag list is ordered, and where the
// user last was. It is saved as JSON in the XDG config directory, apart
// from the main [Config] which is read-only at startup.
type UIState struct {
	// DetailsVisible records whether the bookmark details pane is shown.
	DetailsVisible bool `json:"details_visible"`
	// TagsByCount records whether the navigation tag list is ordered by
	// usage count instead of name.
	TagsByCount bool `json:"tags_by_count"`
	// CompactMode records whether the bookmark list uses single-line rows.
	CompactMode bool `json:"compact_mode"`
	// LastCollection is the collection that was open when the client
	// last exited.
	LastCollection int64 `json:"last_collection"`
}

// DefaultUIState returns the interface state used on first run.
func DefaultUIState() UIState {
	return UIState{DetailsVisible: true}
}

// UIStatePath resolves the UI state file location in the XDG config
// directory, creating parent directories as needed.
func UIStatePath() (string, error) {
	return xdg.ConfigFile(filepath.Join("braindrop", "ui.json"))
}

// LoadUIState reads the UI state from path. A missing or unreadable file
// is not an error; the defaults are returned so a first run or a corrupt
// state file never blocks startup.
func LoadUIState(path string) UIState {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultUIState()
	}

	state := DefaultUIState()
	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultUIState()
	}
	return state
}

// SaveUIState writes the UI state to path as indented JSON.
func SaveUIState(path string, state UIState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
