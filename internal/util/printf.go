// Copyright Thought Machine, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package util holds small formatting helpers shared by the commands.
package util

import (
	"fmt"
	"os"

	"github.com/vercel/pmdetect/internal/ui"
)

// InitPrintf drops the ANSI replacements when stdout is not a terminal.
func InitPrintf() {
	if !ui.IsTTY {
		replacements = map[string]string{}
	}
}

// Sprintf formats like fmt.Sprintf and then expands ${BOLD}, ${RESET} and
// the other pseudo-shell color variables.
func Sprintf(format string, args ...interface{}) string {
	return os.Expand(fmt.Sprintf(format, args...), replace)
}

func replace(s string) string {
	return replacements[s]
}

var replacements = map[string]string{
	"BOLD":      "\x1b[1m",
	"GREY":      "\x1b[2m",
	"RED":       "\x1b[31m",
	"GREEN":     "\x1b[32m",
	"YELLOW":    "\x1b[33m",
	"CYAN":      "\x1b[36m",
	"UNDERLINE": "\x1b[4m",
	"RESET":     "\x1b[0m",
}
