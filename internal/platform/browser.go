package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// OpenBrowser opens the URL in the system default browser
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, url).Start()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, url).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, url).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
