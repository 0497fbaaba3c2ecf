package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Run("walks directories recursively", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(sub, 0750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), nil, 0600))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "b.hcl"), nil, 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), nil, 0600))

		files, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("a regular file is returned as-is", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "records.conf")
		require.NoError(t, os.WriteFile(path, nil, 0600))

		files, err := FindFilesByExtension(path, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".hcl")
		require.Error(t, err)
	})

	t.Run("empty extension errors", func(t *testing.T) {
		_, err := FindFilesByExtension(t.TempDir(), "")
		require.Error(t, err)
	})
}
