package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// raindropAppURL is the web application opened by the visit-raindrop.io
// action.
const raindropAppURL = "https://app.raindrop.io/"

// raindropSettingsURL is the integrations page where the API test token
// lives.
const raindropSettingsURL = "https://app.raindrop.io/settings/integrations"

// openInBrowser hands url to the platform's URL opener.
var openInBrowser = func(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	// Detach; the browser outlives the command.
	go func() { _ = cmd.Wait() }()
	return nil
}
