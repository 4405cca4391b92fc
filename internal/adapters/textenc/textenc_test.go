package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWindows1252(t *testing.T) {
	// "Envío Estándar" as written by a Windows export.
	raw := []byte{'E', 'n', 'v', 0xED, 'o', ' ', 'E', 's', 't', 0xE1, 'n', 'd', 'a', 'r'}

	got, err := Decode(raw, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "Envío Estándar", got)
}

func TestDecodeLatin1ByIANAName(t *testing.T) {
	got, err := Decode([]byte{'C', 0xF3, 'r', 'd', 'o', 'b', 'a'}, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "Córdoba", got)
}

func TestDecodeUTF8StripsBOM(t *testing.T) {
	got, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, "Neuquén"...), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Neuquén", got)
}

func TestDecodeUTF8ReplacesInvalidBytes(t *testing.T) {
	got, err := Decode([]byte{'R', 0xED, 'o'}, "")
	require.NoError(t, err)
	assert.Equal(t, "R\uFFFDo", got)
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "klingon-8")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestEncodeBOM(t *testing.T) {
	assert.Equal(t, []byte("abc"), Encode("abc", false))
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'a'}, Encode("a", true))
}
