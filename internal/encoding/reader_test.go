package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/encoding"
)

func decode(t *testing.T, in []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "João,1150.00", decode(t, []byte("João,1150.00")))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,balance")...)
	assert.Equal(t, "id,balance", decode(t, in))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "ab" with a UTF-16 LE BOM.
	in := []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00}
	assert.Equal(t, "ab", decode(t, in))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as UTF-8.
	in := []byte{'J', 0xE9, 'r', 0xF4, 'm', 'e'}
	assert.Equal(t, "Jérôme", decode(t, in))
}
