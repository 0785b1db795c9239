package mmanager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpHexEmpty(t *testing.T) {
	assert.Equal(t, "", dump_hex(nil))
}

func TestDumpHexSingleRow(t *testing.T) {
	var out = dump_hex([]byte{0x41, 0x42, 0x00})

	assert.Equal(t, "\t000: 41, 42, 00, ", out[:len("\t000: 41, 42, 00, ")])
	assert.Contains(t, out, "AB.")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestDumpHexMultipleRows(t *testing.T) {
	var data = make([]byte, 20)
	for i := range data {
		data[i] = byte('a' + i)
	}

	var out = dump_hex(data)
	var lines = strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "000: ")
	assert.Contains(t, lines[1], "016: ")
	assert.Contains(t, lines[0], "abcdefghijklmnop")
	assert.Contains(t, lines[1], "qrst")
}
