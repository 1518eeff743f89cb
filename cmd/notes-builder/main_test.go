// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notes-builder/internal/convert"
	"github.com/pdiddy/notes-builder/pkg/types"
)

const fixturePDF = "../../internal/convert/testdata/two-pages.pdf"

// execute runs rootCmd with args against fresh viper state and default
// flag values, returning what the command wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// setupNotesDir creates a temp dir holding the fixture PDF under name.
func setupNotesDir(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(fixturePDF)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	return dir
}

func TestRootCommand_Build(t *testing.T) {
	dir := setupNotesDir(t, types.DefaultInputName)

	out, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Generated notes-data.js with 2 pages from Lachlan @ Work.pdf\n", out)

	data, err := os.ReadFile(filepath.Join(dir, types.DefaultOutputName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `window.NOTES_DATA = {"pages":[{"page":1,"meta":"","text":"`))
	assert.True(t, strings.HasSuffix(string(data), `{"page":2,"meta":"","text":""}],"workflow":[]};`))
}

func TestRootCommand_MissingInput(t *testing.T) {
	dir := setupNotesDir(t, "Lachlan at Work.pdf")

	out, err := execute(t, "--dir", dir)
	require.Error(t, err)
	assert.Empty(t, out)

	var missing *convert.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"Lachlan at Work.pdf"}, missing.Candidates)

	_, statErr := os.Stat(filepath.Join(dir, types.DefaultOutputName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommand_CustomNames(t *testing.T) {
	dir := setupNotesDir(t, "handbook.pdf")

	out, err := execute(t, "--dir", dir, "--input", "handbook.pdf", "--output", "handbook-data.js")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated handbook-data.js with 2 pages from handbook.pdf")
	assert.FileExists(t, filepath.Join(dir, "handbook-data.js"))
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, err := execute(t, "extra.pdf")
	assert.Error(t, err)
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	dir := setupNotesDir(t, types.DefaultInputName)

	_, err := execute(t, "--dir", dir, "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.NoFileExists(t, filepath.Join(dir, types.DefaultOutputName))
}

func TestVerifyCommand(t *testing.T) {
	dir := setupNotesDir(t, types.DefaultInputName)
	_, err := execute(t, "--dir", dir)
	require.NoError(t, err)

	out, err := execute(t, "verify", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "notes-data.js: 2 pages (1 without text), 0 workflow sections\n", out)

	out, err = execute(t, "verify", filepath.Join(dir, types.DefaultOutputName))
	require.NoError(t, err)
	assert.Contains(t, out, "2 pages")
}

func TestVerifyCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	gap := filepath.Join(dir, "gap.js")
	require.NoError(t, os.WriteFile(gap,
		[]byte(`window.NOTES_DATA = {"pages":[{"page":1,"meta":"","text":""},{"page":3,"meta":"","text":""}],"workflow":[]};`), 0o644))
	other := filepath.Join(dir, "other.js")
	require.NoError(t, os.WriteFile(other, []byte(`var x = 1;`), 0o644))

	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.js"), errMsg: "reading"},
		{name: "not a notes script", path: other, errMsg: "decoding"},
		{name: "page gap", path: gap, errMsg: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "verify", tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "notes-builder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dir: /srv/notes\ninput: custom.pdf\nlog_level: info\n"), 0o644))

	out, err := execute(t, "config", "--config", cfgPath, "--output", "flag.js")
	require.NoError(t, err)

	assert.Contains(t, out, "dir: /srv/notes\n")
	assert.Contains(t, out, "input: custom.pdf\n")
	assert.Contains(t, out, "output: flag.js\n")
	assert.Contains(t, out, "log_level: info\n")
}

func TestConfigCommand_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	out, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "dir: "+wd+"\n")
	assert.Contains(t, out, "input: Lachlan @ Work.pdf\n")
	assert.Contains(t, out, "output: notes-data.js\n")
	assert.Contains(t, out, "log_level: warn\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "notes-builder dev\n", out)
}
