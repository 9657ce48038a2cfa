// Package term provides color state and terminal detection.
//
// Colors are package-level because logging and display both need them.
// [Configure] sets them once during startup; when colors are disabled every
// palette entry renders its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/renamer/internal/config"
)

// Palette entries. Each wraps text in the matching color when enabled.
var (
	Red    = color.New(color.FgHiRed, color.Bold)
	Green  = color.New(color.FgHiGreen, color.Bold)
	Yellow = color.New(color.FgHiYellow, color.Bold)
	Blue   = color.New(color.FgHiBlue, color.Bold)
	Cyan   = color.New(color.FgHiCyan, color.Bold)
)

var palette = []*color.Color{Red, Green, Yellow, Blue, Cyan}

var enabled bool

// Configure resolves the color mode and enables or disables the palette.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	for _, c := range palette {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Paint renders s with c when colors are enabled.
func Paint(c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
