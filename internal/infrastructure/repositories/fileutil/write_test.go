//go:build unit

package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/fileutil"
)

func TestWriteIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("should not rewrite identical content", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("same"), 0o600))

		// when
		written, err := fileutil.WriteIfChanged(path, []byte("same"))

		// then
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("should rewrite different content and keep the file mode", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		// when
		written, err := fileutil.WriteIfChanged(path, []byte("new"))

		// then
		require.NoError(t, err)
		assert.True(t, written)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "new", string(data))
		info, _ := os.Stat(path)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.txt")

		// when
		_, err := fileutil.WriteIfChanged(path, []byte("x"))

		// then
		require.Error(t, err)
	})
}

func TestSplitBOM(t *testing.T) {
	t.Parallel()

	t.Run("should strip and restore a byte order mark", func(t *testing.T) {
		t.Parallel()

		// given
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<a/>")...)

		// when
		content, bom := fileutil.SplitBOM(data)
		restored := fileutil.JoinBOM(content, bom)

		// then
		assert.True(t, bom)
		assert.Equal(t, "<a/>", string(content))
		assert.Equal(t, data, restored)
	})

	t.Run("should leave content without a byte order mark untouched", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("<a/>")

		// when
		content, bom := fileutil.SplitBOM(data)

		// then
		assert.False(t, bom)
		assert.Equal(t, data, fileutil.JoinBOM(content, bom))
	})
}
