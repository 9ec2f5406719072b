package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"gotest.tools/v3/assert"
)

func restoreNoColor(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestGetColorModeFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  ColorMode
	}{
		{"0", ColorModeSuppressed},
		{"false", ColorModeSuppressed},
		{"1", ColorModeForced},
		{"2", ColorModeForced},
		{"3", ColorModeForced},
		{"true", ColorModeForced},
		{"", ColorModeUndefined},
		{"4", ColorModeUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FORCE_COLOR", tt.value)
			assert.Equal(t, GetColorModeFromEnv(), tt.want)
		})
	}
}

func TestColorModeFromFlags(t *testing.T) {
	t.Setenv("FORCE_COLOR", "1")
	assert.Equal(t, ColorModeFromFlags(false, true), ColorModeSuppressed)
	assert.Equal(t, ColorModeFromFlags(true, true), ColorModeSuppressed)
	assert.Equal(t, ColorModeFromFlags(true, false), ColorModeForced)
	assert.Equal(t, ColorModeFromFlags(false, false), ColorModeForced)
}

func TestBuildColoredUiSuppressed(t *testing.T) {
	restoreNoColor(t)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	terminal := BuildColoredUi(ColorModeSuppressed, out, errOut)

	terminal.Output(Bold("npm"))
	terminal.Error("broken")
	assert.Equal(t, out.String(), "npm\n")
	assert.Equal(t, errOut.String(), "broken\n")
}

func TestBuildColoredUiForced(t *testing.T) {
	restoreNoColor(t)
	out := &bytes.Buffer{}
	terminal := BuildColoredUi(ColorModeForced, out, &bytes.Buffer{})

	terminal.Output(Bold("npm"))
	assert.Assert(t, out.String() != "npm\n")
	assert.Equal(t, StripAnsi(out.String()), "npm\n")
}
