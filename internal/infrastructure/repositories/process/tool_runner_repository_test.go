//go:build unit

package process_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/process"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not available on Windows")
	}
	path := filepath.Join(t.TempDir(), "tool.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

//nolint:paralleltest // the log hook is attached to the global logger
func TestToolRunnerRepositoryRun(t *testing.T) {
	t.Run("should relay every output line and succeed on exit code zero", func(t *testing.T) {
		// given
		tool := writeScript(t, "echo first\necho second >&2\npwd\n")
		workDir := t.TempDir()
		hook := test.NewGlobal()
		defer hook.Reset()

		// when
		err := process.NewToolRunnerRepository().Run(context.Background(), tool, []string{"a"}, workDir)

		// then
		require.NoError(t, err)
		var messages []string
		for _, entry := range hook.AllEntries() {
			messages = append(messages, entry.Message)
		}
		assert.Contains(t, messages, "Build output: first")
		assert.Contains(t, messages, "Build output: second")
		resolved, _ := filepath.EvalSymlinks(workDir)
		assert.True(t,
			containsAny(messages, "Build output: "+workDir, "Build output: "+resolved),
			"the tool should run in the working directory",
		)
	})

	t.Run("should return a process error carrying the exit code", func(t *testing.T) {
		// given
		tool := writeScript(t, "exit 3\n")

		// when
		err := process.NewToolRunnerRepository().Run(context.Background(), tool, nil, t.TempDir())

		// then
		require.ErrorIs(t, err, entities.ErrProcessFailure)
		var processErr *entities.ProcessError
		require.True(t, errors.As(err, &processErr))
		assert.Equal(t, 3, processErr.ExitCode)
		assert.Equal(t, "tool.sh", processErr.Tool)
	})

	t.Run("should fail to start a missing tool", func(t *testing.T) {
		// given
		tool := filepath.Join(t.TempDir(), "missing.exe")

		// when
		err := process.NewToolRunnerRepository().Run(context.Background(), tool, nil, t.TempDir())

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrProcessFailure)
	})

	t.Run("should relay a line longer than the default scanner limit", func(t *testing.T) {
		// given
		tool := writeScript(t, "head -c 70000 /dev/zero | tr '\\0' x\necho\necho done\n")
		hook := test.NewGlobal()
		defer hook.Reset()

		// when
		err := runWithin(t, tool, 30*time.Second)

		// then
		require.NoError(t, err)
		var longest int
		var messages []string
		for _, entry := range hook.AllEntries() {
			longest = max(longest, len(entry.Message))
			messages = append(messages, entry.Message)
		}
		assert.Equal(t, len("Build output: ")+70000, longest)
		assert.Contains(t, messages, "Build output: done")
	})

	t.Run("should keep draining output after a line over the relay limit", func(t *testing.T) {
		// given
		tool := writeScript(t, "head -c 2000000 /dev/zero | tr '\\0' x\necho\n"+
			"i=0\nwhile [ $i -lt 20000 ]; do echo line; i=$((i+1)); done\nexit 4\n")
		hook := test.NewGlobal()
		defer hook.Reset()

		// when
		err := runWithin(t, tool, 60*time.Second)

		// then
		var processErr *entities.ProcessError
		require.True(t, errors.As(err, &processErr))
		assert.Equal(t, 4, processErr.ExitCode)
		var warned bool
		for _, entry := range hook.AllEntries() {
			warned = warned || strings.HasPrefix(entry.Message, "Build output no longer relayed")
		}
		assert.True(t, warned)
	})
}

func containsAny(values []string, candidates ...string) bool {
	for _, value := range values {
		for _, candidate := range candidates {
			if value == candidate {
				return true
			}
		}
	}
	return false
}

func runWithin(t *testing.T, tool string, timeout time.Duration) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- process.NewToolRunnerRepository().Run(context.Background(), tool, nil, t.TempDir())
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		t.Fatalf("%s did not return within %s", filepath.Base(tool), timeout)
		return nil
	}
}
