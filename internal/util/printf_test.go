package util

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestSprintf(t *testing.T) {
	saved := replacements
	t.Cleanup(func() { replacements = saved })

	assert.Equal(t, Sprintf("${BOLD}%v${RESET} found", "npm"), "\x1b[1mnpm\x1b[0m found")
	assert.Equal(t, Sprintf("${NOPE}%d", 1), "1")

	replacements = map[string]string{}
	assert.Equal(t, Sprintf("${BOLD}%v${RESET} found", "npm"), "npm found")
}
