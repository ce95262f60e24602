package viewer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Viewer opens rendered images with the desktop's default application.
type Viewer struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	start    func(ctx context.Context, name string, args ...string) error
}

// New returns a Viewer for the current platform.
func New() *Viewer {
	return &Viewer{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		start: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Start()
		},
	}
}

// command returns the opener for the platform, or "" when no display is available.
func (v *Viewer) command() string {
	switch v.goos {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		if v.getenv("DISPLAY") == "" && v.getenv("WAYLAND_DISPLAY") == "" {
			return ""
		}
		return "xdg-open"
	}
}

// Available reports whether images can be shown in this environment.
func (v *Viewer) Available() bool {
	cmd := v.command()
	if cmd == "" {
		return false
	}
	_, err := v.lookPath(cmd)
	return err == nil
}

// Open launches the viewer for each path without waiting for it to exit.
// It returns nil without doing anything when no display is available.
func (v *Viewer) Open(ctx context.Context, paths ...string) error {
	if !v.Available() {
		return nil
	}
	cmd := v.command()
	for _, p := range paths {
		if err := v.start(ctx, cmd, p); err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
	}
	return nil
}
