package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deploygo/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		path := writeConfig(t, `
zlib/1.2.11: []
gcc/10.2.0:
  - zlib/1.2.11
tool:
  - gcc
`)
		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, model.Entries, 3)
		assert.Equal(t, "zlib/1.2.11", model.Entries[0].Package)
		assert.Equal(t, "gcc/10.2.0", model.Entries[1].Package)
		assert.Equal(t, []string{"zlib/1.2.11"}, model.Entries[1].Dependencies)
		assert.Equal(t, "tool", model.Entries[2].Package)
	})

	t.Run("null dependencies mean none", func(t *testing.T) {
		path := writeConfig(t, "boost:\n")
		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, model.Entries, 1)
		assert.Empty(t, model.Entries[0].Dependencies)
	})

	t.Run("duplicate key is a hard error", func(t *testing.T) {
		path := writeConfig(t, `
gcc: []
gcc: [zlib]
`)
		_, err := NewLoader().Load(context.Background(), path)
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "duplicate key")
	})

	t.Run("non-mapping document is rejected", func(t *testing.T) {
		path := writeConfig(t, "- a\n- b\n")
		_, err := NewLoader().Load(context.Background(), path)
		var parseErr *config.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("non-sequence dependencies are rejected", func(t *testing.T) {
		path := writeConfig(t, "gcc: zlib\n")
		_, err := NewLoader().Load(context.Background(), path)
		var parseErr *config.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing file is a parse error", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
		var parseErr *config.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("empty document yields empty model", func(t *testing.T) {
		path := writeConfig(t, "")
		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		assert.Empty(t, model.Entries)
	})
}
