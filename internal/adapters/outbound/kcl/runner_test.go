package kcl_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/kcl"
	"github.com/kclwrap/kclwrap/internal/domain"
)

// stubTool writes an executable shell script standing in for the kcl
// binary and returns its path.
func stubTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "kcl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestRunner_Run_Success(t *testing.T) {
	tool := stubTool(t, `echo "foo: bar"`)
	runner := kcl.New(tool)

	out, err := runner.Run("main.k", "yaml", "", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "foo: bar")
}

func TestRunner_Run_PassesArgumentsThrough(t *testing.T) {
	tool := stubTool(t, `echo "$@"`)
	runner := kcl.New(tool)

	out, err := runner.Run("main.k", "json", "out.json", []string{"foo=bar"})
	require.NoError(t, err)
	assert.Equal(t, "run main.k --format json -D foo=bar -o out.json\n", out)
}

func TestRunner_Run_NonzeroExitIsToolError(t *testing.T) {
	tool := stubTool(t, `echo "error: invalid syntax" >&2; exit 1`)
	runner := kcl.New(tool)

	_, err := runner.Run("broken.k", "yaml", "", nil)
	require.Error(t, err)

	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Contains(t, toolErr.Stderr, "invalid syntax")
}

func TestRunner_Run_MissingBinaryIsLaunchError(t *testing.T) {
	runner := kcl.New(filepath.Join(t.TempDir(), "no-such-kcl"))

	_, err := runner.Run("main.k", "yaml", "", nil)
	require.Error(t, err)

	var launchErr *domain.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Contains(t, launchErr.Error(), "no-such-kcl")
}

func TestRunner_Format_Success(t *testing.T) {
	tool := stubTool(t, `exit 0`)
	runner := kcl.New(tool)

	assert.NoError(t, runner.Format("main.k"))
}

func TestRunner_Format_InvokesFmtSubcommandOnly(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "args.txt")
	tool := stubTool(t, `echo "$@" > `+marker)
	runner := kcl.New(tool)

	require.NoError(t, runner.Format("main.k"))

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "fmt main.k\n", string(data))
}

func TestRunner_Format_FailureCarriesStderr(t *testing.T) {
	tool := stubTool(t, `echo "fmt failed" >&2; exit 2`)
	runner := kcl.New(tool)

	err := runner.Format("main.k")
	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 2, toolErr.ExitCode)
	assert.Contains(t, toolErr.Stderr, "fmt failed")
}

func TestNew_EmptyToolFallsBackToDefault(t *testing.T) {
	// Behavior is observable only through the launch error message.
	runner := kcl.New("")
	t.Setenv("PATH", t.TempDir())

	_, err := runner.Run("main.k", "yaml", "", nil)
	var launchErr *domain.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "kcl", launchErr.Tool)
}
