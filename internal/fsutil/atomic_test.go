// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		data     string
	}{
		{name: "creates new file", data: "window.X = 1;"},
		{name: "replaces existing file", existing: "old contents that are longer", data: "new"},
		{name: "writes empty file", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/work", 0o755))
			path := "/work/out.js"
			if tt.existing != "" {
				require.NoError(t, afero.WriteFile(fs, path, []byte(tt.existing), 0o644))
			}

			require.NoError(t, WriteFileAtomic(fs, path, []byte(tt.data), 0o644))

			got, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(got))

			entries, err := afero.ReadDir(fs, "/work")
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp file should not be left behind")
		})
	}
}

func TestWriteFileAtomic_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes-data.js")
	fs := afero.NewOsFs()

	require.NoError(t, WriteFileAtomic(fs, path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(fs, path, []byte("second"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	fs := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "missing", "out.js")

	err := WriteFileAtomic(fs, path, []byte("data"), 0o644)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileAtomic_ReadOnlyFilesystem(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/work/out.js", []byte("keep"), 0o644))
	fs := afero.NewReadOnlyFs(base)

	err := WriteFileAtomic(fs, "/work/out.js", []byte("replace"), 0o644)
	require.Error(t, err)

	got, err := afero.ReadFile(base, "/work/out.js")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(got))
}
