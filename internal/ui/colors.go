package ui

import (
	"os"

	"github.com/fatih/color"
)

type ColorMode int

const (
	ColorModeUndefined ColorMode = iota + 1
	ColorModeSuppressed
	ColorModeForced
)

// GetColorModeFromEnv reads FORCE_COLOR the way the supports-color npm
// package does: "0" and "false" disable color, "1" to "3" and "true" force it.
// The color level is not used.
func GetColorModeFromEnv() ColorMode {
	switch forceColor := os.Getenv("FORCE_COLOR"); forceColor {
	case "false", "0":
		return ColorModeSuppressed
	case "true", "1", "2", "3":
		return ColorModeForced
	default:
		return ColorModeUndefined
	}
}

// ColorModeFromFlags resolves --color and --no-color, with FORCE_COLOR as the
// fallback when neither is set. --no-color wins over --color.
func ColorModeFromFlags(forceColor bool, noColor bool) ColorMode {
	switch {
	case noColor:
		return ColorModeSuppressed
	case forceColor:
		return ColorModeForced
	default:
		return GetColorModeFromEnv()
	}
}

func applyColorMode(colorMode ColorMode) ColorMode {
	switch colorMode {
	case ColorModeForced:
		color.NoColor = false
	case ColorModeSuppressed:
		color.NoColor = true
	default:
		// color.NoColor already defaults from isatty and NO_COLOR
	}

	if color.NoColor {
		return ColorModeSuppressed
	}
	return ColorModeForced
}
