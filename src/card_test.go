package mmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Build an MTR 2.x table buffer where every byte of every entry is
// distinct enough to catch offset mistakes.
func synthetic_card_table_buf() []byte {
	var buf = make([]byte, CARD_TABLE_LEN)
	for i := range buf {
		buf[i] = byte((i*7 + i/CARD_ENTRY_LEN) & 0xFF)
	}
	return buf
}

func TestCardTableDecodeEncodeRoundTrip(t *testing.T) {
	var buf = synthetic_card_table_buf()

	var table, err = card_table_decode(buf)
	require.NoError(t, err)

	assert.Equal(t, buf, card_table_encode(table))
}

func TestCardTableDecodeWrongSize(t *testing.T) {
	var _, err = card_table_decode(make([]byte, CARD_TABLE_LEN-1))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = card_table_mtr1_decode(make([]byte, CARD_TABLE_MTR1_LEN+1))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestCardTableMtr1RoundTrip(t *testing.T) {
	var buf = make([]byte, CARD_TABLE_MTR1_LEN)
	for i := range buf {
		buf[i] = byte(255 - i&0xFF)
	}

	var table, err = card_table_mtr1_decode(buf)
	require.NoError(t, err)
	assert.Equal(t, buf, card_table_mtr1_encode(table))
}

func TestConvertCardMtr2ToMtr1(t *testing.T) {
	var table, err = card_table_decode(synthetic_card_table_buf())
	require.NoError(t, err)

	var mtr1 = convert_card_mtr2_to_mtr1(table)

	// Entry i maps to entry i, and the common leading field range is
	// copied unchanged: the MTR 1.x encoding of each converted entry
	// must equal the first CARD_ENTRY_MTR1_LEN bytes of the MTR 2.x
	// encoding of the source entry.
	var mtr2_bytes = card_table_encode(table)
	var mtr1_bytes = card_table_mtr1_encode(mtr1)

	for i := 0; i < CCARD_MAX_MTR1; i++ {
		var src = mtr2_bytes[i*CARD_ENTRY_LEN : i*CARD_ENTRY_LEN+CARD_ENTRY_MTR1_LEN]
		var dst = mtr1_bytes[i*CARD_ENTRY_MTR1_LEN : (i+1)*CARD_ENTRY_MTR1_LEN]
		assert.Equal(t, src, dst, "entry %d", i)
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	var table, err = card_table_decode(synthetic_card_table_buf())
	require.NoError(t, err)

	var before = *table
	convert_card_mtr2_to_mtr1(table)
	assert.Equal(t, before, *table)
}

func TestUpdateCardMtr1Defaults(t *testing.T) {
	var table dlog_mt_card_table_mtr1_t
	for i := range table.c {
		table.c[i].vfy_flags = CARD_VF_ACCS_ROUTING | CARD_VF_MOD10_IND
		table.c[i].carrier_ref = 0xEE
	}

	update_card_mtr1_defaults(&table)

	assert.Equal(t, byte(0x01), table.c[0].carrier_ref)
	assert.Equal(t, byte(0x09), table.c[8].carrier_ref)
	assert.Equal(t, byte(0x01), table.c[9].carrier_ref)
	assert.Equal(t, byte(0x05), table.c[13].carrier_ref)

	// Entries past the re-sequenced range keep their carrier_ref.
	assert.Equal(t, byte(0xEE), table.c[14].carrier_ref)

	for i := range table.c {
		assert.Zero(t, table.c[i].vfy_flags&CARD_VF_ACCS_ROUTING, "entry %d", i)
		assert.Equal(t, byte(CARD_VF_MOD10_IND), table.c[i].vfy_flags&CARD_VF_MOD10_IND)
	}
}

func TestServiceCodeViews(t *testing.T) {
	var s service_code_t
	for i := range s.raw {
		s.raw[i] = byte(i + 1)
	}

	var cc = s.cc()
	assert.Equal(t, uint16(0x0201), cc.svc_code[0])
	assert.Equal(t, uint16(0x0A09), cc.svc_code[4])
	assert.Equal(t, byte(11), cc.spill_string[0])
	assert.Equal(t, byte(19), cc.term_char)
	assert.Equal(t, byte(20), cc.discount_index)

	var sc = s.sc()
	assert.Equal(t, byte(1), sc.check_digits[0])
	assert.Equal(t, byte(7), sc.check_value[0])
	assert.Equal(t, byte(15), sc.manufacturer[0])
	assert.Equal(t, byte(20), sc.discount_index)
}
