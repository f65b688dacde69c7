package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deploygo/internal/cli"
	"github.com/vk/deploygo/internal/config"
	"github.com/vk/deploygo/internal/dag"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	assert.Equal(t, 2, exitCode(err))
}

func TestRun_RendersShellScript(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "site.yaml", "gcc/10.2.0:\n  - mpfr\ntool:\n  - gcc\n")
	out := &bytes.Buffer{}
	err := run(out, []string{"--color", "never", "shell", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "# Building gcc/10.2.0/default")
	require.Contains(t, out.String(), "build tool")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("cli errors keep their code", func(t *testing.T) {
		assert.Equal(t, 2, exitCode(&cli.ExitError{Code: 2, Message: "bad flag"}))
	})

	t.Run("config parse errors exit 2", func(t *testing.T) {
		path := writeConfig(t, "site.yaml", "gcc: []\ngcc: [zlib]\n")
		err := run(&bytes.Buffer{}, []string{"shell", path})
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("cyclic deployments exit 1", func(t *testing.T) {
		path := writeConfig(t, "site.yaml", "a:\n  - b\nb:\n  - a\n")
		err := run(&bytes.Buffer{}, []string{"shell", path})
		var cycErr *dag.CyclicDependencyError
		require.ErrorAs(t, err, &cycErr)
		assert.Equal(t, 1, exitCode(err))
	})
}
