// Package sysopen opens file-browser and terminal windows on the host OS.
package sysopen

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrTerminalUnsupported indicates the terminal helper has no implementation
// for the current platform
var ErrTerminalUnsupported = errors.New("terminal helper is only supported on Windows")

// startCommand is swapped in tests so no window is actually opened
var startCommand = func(cmd *exec.Cmd) error { return cmd.Start() }

// Folder opens dir in the platform's file browser. The viewer process is
// started and not waited on.
func Folder(goos, dir string) error {
	var cmd *exec.Cmd
	switch goos {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}

	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("failed to open file browser at %s: %w", dir, err)
	}
	return nil
}

// Terminal opens a command prompt with dir as its working directory.
// Windows-only; other platforms get ErrTerminalUnsupported.
func Terminal(goos, dir string) error {
	if goos != "windows" {
		return ErrTerminalUnsupported
	}

	cmd := exec.Command("cmd.exe")
	cmd.Dir = dir
	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("failed to open terminal at %s: %w", dir, err)
	}
	return nil
}
