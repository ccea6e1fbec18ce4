package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installFakeTool(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
}

func TestDetectAvailable(t *testing.T) {
	dir := t.TempDir()
	installFakeTool(t, dir, "bemenu")
	t.Setenv("PATH", dir)

	v, ok := DetectAvailable()
	require.True(t, ok)
	assert.Equal(t, "bemenu", v.Name)
}

func TestDetectAvailableFollowsPriority(t *testing.T) {
	dir := t.TempDir()
	installFakeTool(t, dir, "bemenu")
	installFakeTool(t, dir, "rofi")
	t.Setenv("PATH", dir)

	// rofi comes before bemenu in the probe order
	v, ok := DetectAvailable()
	require.True(t, ok)
	assert.Equal(t, "rofi", v.Name)
}

func TestDetectAvailableNothingInstalled(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, ok := DetectAvailable()
	assert.False(t, ok)
}

func TestVariantIsAvailable(t *testing.T) {
	dir := t.TempDir()
	installFakeTool(t, dir, "dmenu")
	t.Setenv("PATH", dir)

	dmenu, err := LookupVariant("dmenu")
	require.NoError(t, err)
	assert.True(t, dmenu.IsAvailable())

	rofi, err := LookupVariant("rofi")
	require.NoError(t, err)
	assert.False(t, rofi.IsAvailable())
}
