package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag(t *testing.T) {
	conv := Flag("-b")

	tokens, err := conv(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"-b"}, tokens)

	tokens, err = conv(false)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = conv(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	_, err = conv("yes")
	assert.Error(t, err)
}

func TestIntOpt(t *testing.T) {
	conv := IntOpt("-l")

	tokens, err := conv(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"-l", "5"}, tokens)

	// TOML and mapstructure hand over int64
	tokens, err = conv(int64(7))
	require.NoError(t, err)
	assert.Equal(t, []string{"-l", "7"}, tokens)

	tokens, err = conv("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"-l", "2"}, tokens)

	tokens, err = conv(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	_, err = conv("not castable")
	assert.Error(t, err)
}

func TestStringOpt(t *testing.T) {
	conv := StringOpt("-p")

	tokens, err := conv("run:")
	require.NoError(t, err)
	assert.Equal(t, []string{"-p", "run:"}, tokens)

	tokens, err = conv(42)
	require.NoError(t, err)
	assert.Equal(t, []string{"-p", "42"}, tokens)

	tokens, err = conv(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestFloatOpt(t *testing.T) {
	conv := FloatOpt("-o")

	tokens, err := conv(0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"-o", "0.5"}, tokens)

	tokens, err = conv(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"-o", "1"}, tokens)

	tokens, err = conv("0.2")
	require.NoError(t, err)
	assert.Equal(t, []string{"-o", "0.2"}, tokens)

	_, err = conv("not castable")
	assert.Error(t, err)
}

func TestRegistryOrderAndOverride(t *testing.T) {
	r := NewRegistry()
	r.Register("bottom", Flag("-b"))
	r.Register("lines", IntOpt("-l"))
	assert.Equal(t, []string{"bottom", "lines"}, r.Names())

	// overriding keeps the original position
	r.Register("bottom", Flag("-bottom"))
	assert.Equal(t, []string{"bottom", "lines"}, r.Names())

	conv, ok := r.Lookup("bottom")
	require.True(t, ok)
	tokens, err := conv(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"-bottom"}, tokens)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryClone(t *testing.T) {
	r := NewRegistry()
	r.Register("bottom", Flag("-b"))

	clone := r.Clone()
	clone.Register("extra", Flag("-e"))

	assert.Equal(t, []string{"bottom", "extra"}, clone.Names())
	assert.Equal(t, []string{"bottom"}, r.Names())
}

func TestDefaultRegistryCoversDmenuOptions(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{
		"bottom", "grab", "insensitive", "lines", "monitor", "prompt",
		"font", "normal_bg", "normal_fg", "selected_bg", "selected_fg",
		"windowid", "filter", "fuzzy", "token", "mask", "screen",
		"window_name", "window_class", "opacity", "dim", "dim_color",
		"height", "xoffset", "yoffset", "width",
	} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "missing option %q", name)
	}
}
