package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/hashicorp/go-gatedio"
	"github.com/vercel/pmdetect/internal/cmdutil"
	"github.com/vercel/pmdetect/internal/fspath"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

type result struct {
	exitCode int
	stdout   string
	stderr   string
}

func runPmdetect(t *testing.T, args ...string) result {
	t.Helper()
	for _, key := range []string{
		"PMDETECT_WORKING_DIR",
		"PMDETECT_STRATEGIES",
		"PMDETECT_FORMAT",
		"PMDETECT_USER_AGENT",
		"PMDETECT_LOG_LEVEL",
		"PMDETECT_LOG_JSON",
		"npm_config_user_agent",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %v", err)
		}
	}
	stdout := gatedio.NewByteBuffer()
	stderr := gatedio.NewByteBuffer()
	helper := cmdutil.NewHelper("1.2.3")
	helper.UserConfigPath = fspath.AbsoluteSystemPathFromUpstream(t.TempDir()).UntypedJoin("pmdetect", "config.json")
	helper.Stdout = stdout
	helper.Stderr = stderr
	exitCode := run(helper, append([]string{"--no-color"}, args...))
	return result{exitCode: exitCode, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRootPrintsCommands(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-root", fs.WithFile("package-lock.json", "{}"))

	res := runPmdetect(t, "--cwd", dir.Path())
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Equal(t, res.stdout, `{
  "name": "npm",
  "agent": "npm",
  "install": "npm install",
  "frozen-install": "npm ci",
  "global-install": "npm install -g",
  "uninstall": "npm uninstall",
  "global-uninstall": "npm uninstall -g",
  "update": "npm update",
  "run": "npm run",
  "exec": "npx",
  "exec-local": "npx"
}
`)
}

func TestRootBerry(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-berry",
		fs.WithFile("package.json", `{"packageManager": "yarn@3.2.1"}`),
		fs.WithFile("package-lock.json", "{}"),
	)

	res := runPmdetect(t, "-w", dir.Path(), "--format", "yaml")
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Assert(t, strings.HasPrefix(res.stdout, "name: yarn\nagent: yarnBerry\n"), res.stdout)
}

func TestRootNotFound(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-empty")

	res := runPmdetect(t, "-w", dir.Path(), "--strategies", "userAgent")
	assert.Equal(t, res.exitCode, 1)
	assert.Equal(t, res.stdout, "")
	assert.Assert(t, strings.Contains(res.stderr, "No package manager found"), res.stderr)
}

func TestRootUnknownPackageManager(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-bun", fs.WithFile("package.json", `{"packageManager": "bun@1.0.0"}`))

	res := runPmdetect(t, "-w", dir.Path())
	assert.Equal(t, res.exitCode, 1)
	assert.Assert(t, strings.Contains(res.stderr, `unknown package manager "bun"`), res.stderr)
}

func TestDetectCommand(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-detect",
		fs.WithFile("package.json", `{"packageManager": "^pnpm@8.6.0"}`),
		fs.WithDir("packages", fs.WithDir("web")),
	)

	res := runPmdetect(t, "detect", "--cwd", dir.Join("packages", "web"))
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Equal(t, res.stdout, "{\n  \"name\": \"pnpm\",\n  \"version\": \"8.6.0\"\n}\n")
}

func TestDetectCommandUserAgent(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-agent")

	res := runPmdetect(t, "detect", "-w", dir.Path(), "--strategies", "userAgent", "--user-agent", "yarn/1.22.19 npm/? node/v18.16.0")
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Equal(t, res.stdout, "{\n  \"name\": \"yarn\",\n  \"version\": \"1.22.19\"\n}\n")
}

func TestCommandsCommand(t *testing.T) {
	res := runPmdetect(t, "commands", "yarn@1.22.19", "--format", "yaml")
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Assert(t, strings.HasPrefix(res.stdout, "name: yarn\nagent: yarn\n"), res.stdout)

	res = runPmdetect(t, "commands", "yarn@4.0.0", "--format", "yaml")
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Assert(t, strings.HasPrefix(res.stdout, "name: yarn\nagent: yarnBerry\n"), res.stdout)

	res = runPmdetect(t, "commands", "bun")
	assert.Equal(t, res.exitCode, 1)
	assert.Assert(t, strings.Contains(res.stderr, `unknown package manager "bun"`), res.stderr)
}

func TestGetCommand(t *testing.T) {
	dir := fs.NewDir(t, "pmdetect-get", fs.WithFile("pnpm-lock.yaml", ""))

	res := runPmdetect(t, "get", "run", "build", "-w", dir.Path())
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Equal(t, res.stdout, "pnpm run build\n")

	res = runPmdetect(t, "-w", dir.Path(), "get", "exec", "--", "cowsay", "--help")
	assert.Equal(t, res.exitCode, 0, res.stderr)
	assert.Equal(t, res.stdout, "pnpm dlx cowsay --help\n")
}

func TestGetCommandUnknownAction(t *testing.T) {
	res := runPmdetect(t, "get", "publish")
	assert.Equal(t, res.exitCode, 1)
	assert.Assert(t, strings.Contains(res.stderr, `unknown action "publish"`), res.stderr)
}

func TestInvalidStrategy(t *testing.T) {
	res := runPmdetect(t, "--strategies", "lockfile")
	assert.Equal(t, res.exitCode, 1)
	assert.Assert(t, strings.Contains(res.stderr, `invalid strategy "lockfile"`), res.stderr)
}

func TestVersion(t *testing.T) {
	res := runPmdetect(t, "--version")
	assert.Equal(t, res.exitCode, 0)
	assert.Equal(t, res.stdout, "1.2.3\n")
}
