package mmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestStringToBCDA(t *testing.T) {
	var buffer, consumed = string_to_bcd_a("105", 4)

	// '1' -> high nibble 1, '0' -> low nibble 0xA, '5' -> high nibble 5,
	// final nibble left at zero from the zero fill.
	assert.Equal(t, []byte{0x1A, 0x50, 0x00, 0x00}, buffer)
	assert.Equal(t, 3, consumed)
}

func TestStringToBCDATruncates(t *testing.T) {
	var buffer, consumed = string_to_bcd_a("123456789", 2)

	assert.Equal(t, []byte{0x12, 0x34}, buffer)
	assert.Equal(t, 4, consumed)
}

func TestStringToBCDAEmpty(t *testing.T) {
	var buffer, consumed = string_to_bcd_a("", 3)

	assert.Equal(t, []byte{0x00, 0x00, 0x00}, buffer)
	assert.Zero(t, consumed)
}

func TestCallscrnNumToString(t *testing.T) {
	// Nibbles 1, 0xA, 5, 0: the zero nibble terminates the number.
	assert.Equal(t, "105", callscrn_num_to_string([]byte{0x1A, 0x50}, 32))

	// Nibbles B-F decode to letters.
	assert.Equal(t, "9B0F", callscrn_num_to_string([]byte{0x9B, 0xAF}, 32))

	// An immediate zero nibble gives an empty number.
	assert.Equal(t, "", callscrn_num_to_string([]byte{0x0A}, 32))
}

func TestCallscrnRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var digits = rapid.StringOfN(rapid.RuneFrom([]rune("0123456789")), 1, 16, -1).Draw(t, "digits")

		var buffer, consumed = string_to_bcd_a(digits, 8)
		assert.Equal(t, len(digits), consumed)

		assert.Equal(t, digits, callscrn_num_to_string(buffer, 32))
	})
}

func TestPhoneNumToString(t *testing.T) {
	// Nibbles 0, 1, 2, 0xE: decode stops before the 0xE sentinel.
	assert.Equal(t, "012", phone_num_to_string([]byte{0x01, 0x2E}, 32))

	// No sentinel: the whole buffer decodes.
	assert.Equal(t, "4085551212", phone_num_to_string([]byte{0x40, 0x85, 0x55, 0x12, 0x12}, 32))

	// Sentinel in the high nibble stops immediately.
	assert.Equal(t, "", phone_num_to_string([]byte{0xE1}, 32))
}

func TestPhoneNumToStringOutOfRangeNibbles(t *testing.T) {
	// Nibbles A-D and F are not expected in valid data.  They render
	// arithmetically so malformed tables still produce bounded output.
	assert.Equal(t, ":;<=?", phone_num_to_string([]byte{0xAB, 0xCD, 0xFE}, 32))
}

func TestDecodersHonorCapacity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var buf = rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "buf")
		var max = rapid.IntRange(1, 8).Draw(t, "max")

		assert.Less(t, len(phone_num_to_string(buf, max)), max)
		assert.Less(t, len(callscrn_num_to_string(buf, max)), max)
	})
}
