package mmanager

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// t.Chdir equivalent for Go toolchains older than 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	var old, err = os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// A carrier table payload with recognizable byte patterns everywhere,
// including the spare region.
func synthetic_carrier_table_buf() []byte {
	var buf = make([]byte, CARRIER_TABLE_LEN-1)
	for i := range buf {
		buf[i] = byte((i*3 + 1) & 0xFF)
	}
	return buf
}

func TestCarrierTableDecodeEncodeRoundTrip(t *testing.T) {
	var buf = synthetic_carrier_table_buf()

	var table, err = carrier_table_decode(buf)
	require.NoError(t, err)

	assert.Equal(t, byte(DLOG_MT_CARRIER_TABLE_EXP), table.id)
	assert.Equal(t, buf, carrier_table_encode(table))
}

func TestCarrierTableDecodeWrongSize(t *testing.T) {
	var _, err = carrier_table_decode(make([]byte, CARRIER_TABLE_LEN))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = carrier_table_decode(make([]byte, CARRIER_TABLE_LEN-2))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestCarrierEntryFieldOffsets(t *testing.T) {
	var buf = make([]byte, CARRIER_ENTRY_LEN)
	buf[0] = 0x07                                  // carrier_ref
	buf[1], buf[2] = 0x34, 0x12                    // carrier_num, little-endian
	buf[3], buf[4], buf[5], buf[6] = 0xFF, 0x3F, 0, 0 // valid_cards
	copy(buf[7:27], "TEST CARRIER PROMPT ")
	buf[27] = 0x7E              // control_byte2
	buf[28] = 0x06              // control_byte
	buf[29], buf[30] = 0xF4, 1  // fgb_timer = 500
	buf[31] = 0x01              // international_accept_flags
	buf[32] = 0x09              // call_entry

	var e = carrier_entry_decode(buf)
	assert.Equal(t, byte(0x07), e.carrier_ref)
	assert.Equal(t, uint16(0x1234), e.carrier_num)
	assert.Equal(t, uint32(0x3FFF), e.valid_cards)
	assert.Equal(t, "TEST CARRIER PROMPT ", e.display_prompt_string())
	assert.Equal(t, byte(0x7E), e.control_byte2)
	assert.Equal(t, byte(0x06), e.control_byte)
	assert.Equal(t, uint16(500), e.fgb_timer)
	assert.Equal(t, byte(0x01), e.international_accept_flags)
	assert.Equal(t, byte(0x09), e.call_entry)
}

func TestCarrierEntryUnused(t *testing.T) {
	var e carrier_table_entry_t
	assert.True(t, e.unused())

	e.carrier_ref = 1
	assert.False(t, e.unused())

	e.carrier_ref = 0
	e.call_entry = 5
	assert.False(t, e.unused())

	e.call_entry = 0
	e.display_prompt[0] = 'A'
	assert.False(t, e.unused())
}

func TestCarrierControlByteLabels(t *testing.T) {
	assert.Equal(t,
		[]string{"SPEC_PROMPT", "COIN_CASH_CD"},
		bits_to_strings(CB_DEFAULT, str_cb))

	assert.Equal(t,
		[]string{"RM_PFX_LCL", "RM_PFX_INTRA", "RM_PFX_INTER", "RM_PFX_INT'L", "RM_PFX_DA", "RM_PFX_1800"},
		bits_to_strings(CB2_DEFAULT, str_cb2))
}

func TestCarrierTableApplyDefaults(t *testing.T) {
	var buf = synthetic_carrier_table_buf()
	var table, err = carrier_table_decode(buf)
	require.NoError(t, err)

	var before = *table
	var defaults = default_carriers()
	carrier_table_apply_defaults(table, &defaults)

	// Default-index array is all zero.
	for i, d := range table.defaults {
		assert.Zero(t, d, "defaults[%d]", i)
	}

	// Entries 0-8 equal the canonical records.
	for i := 0; i < DEFAULT_CARRIERS_MAX; i++ {
		assert.Equal(t, defaults[i], table.carrier[i], "carrier[%d]", i)
		assert.Equal(t, default_carrier_prompts[i], table.carrier[i].display_prompt_string())
		assert.Equal(t, byte(CB2_DEFAULT), table.carrier[i].control_byte2)
		assert.Equal(t, byte(CB_DEFAULT), table.carrier[i].control_byte)
	}

	// Entries past the ninth are untouched.
	for i := DEFAULT_CARRIERS_MAX; i < CARRIER_TABLE_MAX_CARRIERS; i++ {
		assert.Equal(t, before.carrier[i], table.carrier[i], "carrier[%d]", i)
	}

	// Spare region survives byte for byte.
	assert.Equal(t, before.spare, table.spare)

	// And the re-encoded payload reflects exactly that.
	var out = carrier_table_encode(table)
	assert.Equal(t, buf[len(buf)-CARRIER_TABLE_SPARE_LEN:], out[len(out)-CARRIER_TABLE_SPARE_LEN:])
}

func TestDefaultCarriers(t *testing.T) {
	var defaults = default_carriers()

	for i, e := range defaults {
		assert.Equal(t, byte(i), e.carrier_ref)
		assert.Equal(t, uint16(0), e.carrier_num)
		assert.Equal(t, uint32(0x3FFF), e.valid_cards)
		assert.Equal(t, uint16(500), e.fgb_timer)
		assert.Zero(t, e.international_accept_flags)
		assert.Zero(t, e.call_entry)
		assert.Len(t, default_carrier_prompts[i], CARRIER_DISPLAY_PROMPT_LEN)
	}
}

func TestLoadDefaultCarriersNoFile(t *testing.T) {
	chdir(t, t.TempDir())

	var carriers, location, err = load_default_carriers()
	require.NoError(t, err)
	assert.Empty(t, location)
	assert.Equal(t, default_carriers(), carriers)
}

func TestLoadDefaultCarriersOverride(t *testing.T) {
	chdir(t, t.TempDir())

	var yaml = "carriers:\n" +
		"  - ref: 0\n" +
		"    prompt: \"ACME TELECOM\"\n" +
		"    fgbtimer: 700\n"
	require.NoError(t, os.WriteFile("carriers.yaml", []byte(yaml), 0o644))

	var carriers, location, err = load_default_carriers()
	require.NoError(t, err)
	assert.Equal(t, "carriers.yaml", location)

	// Short prompts are blank padded to the full field width.
	assert.Equal(t, "ACME TELECOM        ", carriers[0].display_prompt_string())
	assert.Equal(t, uint16(700), carriers[0].fgb_timer)

	// Untouched entries keep the builtin values.
	assert.Equal(t, default_carriers()[1], carriers[1])
}

func TestLoadDefaultCarriersBadFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("carriers.yaml", []byte("carriers: {not a list}"), 0o644))

	var _, _, err = load_default_carriers()
	assert.Error(t, err)
}
