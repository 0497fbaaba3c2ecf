package hclrecords

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("single file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "org.hcl", `
			options {
				root_id   = "0"
				max_depth = 3
			}

			record "1" {
				parent = "0"
				name   = "Tech Center"
				weight = 10
			}

			record "2" {
				parent = "1"
				name   = "R&D Center"
				attrs = {
					region = "emea"
					active = true
					floors = [1, 2]
				}
			}
		`)

		records, opts, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		require.NotNil(t, opts)
		assert.Equal(t, "0", opts.RootID)
		assert.Equal(t, 3, opts.MaxDepth)

		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0]["id"])
		assert.Equal(t, "0", records[0]["parentId"])
		assert.Equal(t, "Tech Center", records[0]["name"])
		assert.Equal(t, 10.0, records[0]["weight"])

		assert.Equal(t, "emea", records[1]["region"])
		assert.Equal(t, true, records[1]["active"])
		assert.Equal(t, []any{1.0, 2.0}, records[1]["floors"])
		assert.NotContains(t, records[1], "weight")
	})

	t.Run("directory consolidates files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.hcl", `record "1" { parent = "0" }`)
		writeFile(t, dir, "b.hcl", `record "2" { parent = "1" }`)

		records, opts, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		assert.Nil(t, opts)
		assert.Len(t, records, 2)
	})

	t.Run("extra options blocks are ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.hcl", `options { root_id = "first" }`)
		writeFile(t, dir, "b.hcl", `options { root_id = "second" }`)

		_, opts, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, opts)
		assert.Equal(t, "first", opts.RootID)
	})

	t.Run("empty directory yields no records", func(t *testing.T) {
		records, opts, err := NewLoader().Load(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Nil(t, opts)
	})

	t.Run("syntax error fails the load", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "broken.hcl", `record "1" { parent = `)

		_, _, err := NewLoader().Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("non-object attrs fail the load", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "bad.hcl", `
			record "1" {
				parent = "0"
				attrs  = "not an object"
			}
		`)

		_, _, err := NewLoader().Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "attrs must be an object")
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, _, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}
