//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// EnableColorOutput checks if colorized output is possible and enables
// VT100 sequence processing in the Windows console.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4
	mode |= enableVirtualTerminalProcessing

	if err := windows.SetConsoleMode(windows.Handle(stream.Fd()), mode); err != nil {
		return false
	}
	return true
}
