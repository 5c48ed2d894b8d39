package keysheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	require.ErrorIs(t, ValidateInput(data), ErrInvalidUTF8)
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	require.ErrorIs(t, ValidateInput(data), ErrBinaryInput)
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := bytes.Repeat([]byte{'a', 0x01}, 64)
	require.ErrorIs(t, ValidateInput(data), ErrBinaryInput)
}

func TestValidateInputAcceptsTemplate(t *testing.T) {
	src := strings.Join([]string{
		"[main]",
		"title = \"Überschrift\"",
		"column_count = 2",
		"",
		"\t# tabs and newlines are fine",
	}, "\r\n")
	require.NoError(t, ValidateInput([]byte(src)))
}

func TestDecodeRejectsBinaryTemplate(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x00, 0x01, 0x02}), FormatTOML)
	require.ErrorIs(t, err, ErrBinaryInput)
}
