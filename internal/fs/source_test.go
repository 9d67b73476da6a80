package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTextDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x2D, 0x00, 0x20, 0x00, 0x41, 0x00}
	assert.True(t, IsText("list.md", content))
}

func TestIsTextRejectsBinary(t *testing.T) {
	assert.False(t, IsText("notes.md", []byte{'a', 0x00, 'b'}))
	assert.False(t, IsText("image.png", []byte("- looks like markdown")))
	assert.True(t, IsText("-", nil))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{name: "utf16le", content: []byte{0xFF, 0xFE, 0x2D, 0x00, 0x20, 0x00, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}, want: "- A\n"},
		{name: "utf16be", content: []byte{0xFE, 0xFF, 0x00, 0x2A, 0x00, 0x20, 0x00, 0x42}, want: "* B"},
		{name: "utf8 bom", content: append([]byte{0xEF, 0xBB, 0xBF}, "- x"...), want: "- x"},
		{name: "nfc", content: []byte("- cafe\u0301"), want: "- caf\u00e9"},
		{name: "crlf", content: []byte("- a\r\n- b\r\n"), want: "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.content))
		})
	}
}

func TestReadSourceFromStdin(t *testing.T) {
	src, err := ReadSource("-", strings.NewReader("- one\n"))
	require.NoError(t, err)
	assert.Equal(t, "-", src.Name)
	assert.Equal(t, "- one\n", src.Text)

	src, err = ReadSource("", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "-", src.Name)
}

func TestReadSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("- a\n  - b\n"), 0o600))

	src, err := ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)
	assert.Equal(t, "- a\n  - b\n", src.Text)
}

func TestReadSourceErrors(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadSource("-", strings.NewReader("a\x00b"))
	require.ErrorIs(t, err, ErrBinaryContent)

	_, err = ReadSource("-", strings.NewReader(strings.Repeat("x", MaxDocumentSize+1)))
	require.ErrorIs(t, err, ErrTooLarge)
}

