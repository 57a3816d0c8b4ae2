package cli

import (
	"os/exec"
	"runtime"
)

// openInViewer hands the file to the OS default handler. Start rather
// than Run: the viewer outlives the prompt loop.
func openInViewer(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
