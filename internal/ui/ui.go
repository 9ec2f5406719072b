// Package ui builds the terminal output used by the pmdetect commands.
package ui

import (
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
)

const ansiEscapeStr = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))"

// IsTTY is true when stdout appears to be a tty
var IsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var bold = color.New(color.Bold)

// ErrorPrefix precedes error messages on stderr
var ErrorPrefix = color.New(color.Bold, color.FgRed, color.ReverseVideo).Sprint(" ERROR ")

var ansiRegex = regexp.MustCompile(ansiEscapeStr)

// Bold prints out bold text
func Bold(str string) string {
	return bold.Sprint(str)
}

// StripAnsi removes ANSI escape sequences from str.
func StripAnsi(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

type stripAnsiWriter struct {
	wrappedWriter io.Writer
}

func (into *stripAnsiWriter) Write(p []byte) (int, error) {
	n, err := into.wrappedWriter.Write(ansiRegex.ReplaceAll(p, []byte{}))
	if err != nil {
		return n, err
	}
	// n may be shorter than p once escapes are removed, but every byte of p
	// was handled.
	return len(p), nil
}

// BuildColoredUi writes to out and errOut, stripping ANSI codes from both
// when color is suppressed.
func BuildColoredUi(colorMode ColorMode, out io.Writer, errOut io.Writer) cli.Ui {
	colorMode = applyColorMode(colorMode)

	var outWriter, errWriter io.Writer
	if colorMode == ColorModeSuppressed {
		outWriter = &stripAnsiWriter{wrappedWriter: out}
		errWriter = &stripAnsiWriter{wrappedWriter: errOut}
	} else {
		outWriter = out
		errWriter = errOut
	}

	return &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      outWriter,
			ErrorWriter: errWriter,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorNone,
		WarnColor:   cli.UiColor{Code: int(color.FgYellow), Bold: false},
		ErrorColor:  cli.UiColorRed,
	}
}
