package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Expanded carrier table (DLOG_MT_CARRIER_TABLE_EXP)
 *		codec and factory defaulter.
 *
 * Description:	The table routes long-distance calls: one byte of
 *		table ID, nine default-carrier indexes (PIC, Coin and
 *		Card crossed with Inter-LATA, Intra-LATA and Local),
 *		a fixed array of carrier entries, and trailing spare
 *		bytes that must survive a read/modify/write cycle
 *		untouched.
 *
 *		On disk the leading ID byte is NOT stored; the file is
 *		the payload only.  The defaulter rewrites the nine
 *		leading entries with a canonical carrier set and zeroes
 *		the default indexes, leaving everything else as read.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
)

const (
	DEFAULT_CARRIERS_MAX       = 9
	CARRIER_TABLE_MAX_CARRIERS = 33
	CARRIER_DISPLAY_PROMPT_LEN = 20
	CARRIER_TABLE_SPARE_LEN    = 10

	CARRIER_ENTRY_LEN = 33

	/* Includes the leading table-ID byte, which is not stored on disk. */
	CARRIER_TABLE_LEN = 1 + DEFAULT_CARRIERS_MAX +
		CARRIER_TABLE_MAX_CARRIERS*CARRIER_ENTRY_LEN + CARRIER_TABLE_SPARE_LEN
)

/* Control byte bits. */
const (
	CB_CARD_101XXXX_PREFIX     = 1 << 0
	CB_USE_SPEC_DISPLAY_PROMPT = 1 << 1
	CB_ACCEPTS_COIN_CASH_CARDS = 1 << 2
	CB_ALTERNATE_BONG_TIMEOUT  = 1 << 3
	CB_DELAY_AFTER_BONG        = 1 << 4
	CB_INTRALATA_TO_LEC        = 1 << 5
	CB_USE_OUTDIAL_STRING      = 1 << 6
	CB_FEATURE_GROUP_B         = 1 << 7
)

/* Control byte 2 bits. */
const (
	CB2_FEATURE_GROUP_B_PROMPT           = 1 << 0
	CB2_REM_CARRIER_PREFIX_ZM_LOCAL      = 1 << 1
	CB2_REM_CARRIER_PREFIX_INTRALATA     = 1 << 2
	CB2_REM_CARRIER_PREFIX_INTERLATA     = 1 << 3
	CB2_REM_CARRIER_PREFIX_INTERNATIONAL = 1 << 4
	CB2_REM_CARRIER_PREFIX_DA            = 1 << 5
	CB2_REM_CARRIER_PREFIX_1800          = 1 << 6
	CB2_SPARE                            = 1 << 7
)

/* Control Byte strings: */
var str_cb = []string{
	"CARCD101XXXX",
	"SPEC_PROMPT",
	"COIN_CASH_CD",
	"ALT_BONG_TMO",
	"DLY_AFT_BONG",
	"INTRA_TO_LEC",
	"OUTDIAL_STR",
	"FEAT_GROUP_B",
}

/* Control Byte 2 strings: */
var str_cb2 = []string{
	"FGB_PROMPT",
	"RM_PFX_LCL",
	"RM_PFX_INTRA",
	"RM_PFX_INTER",
	"RM_PFX_INT'L",
	"RM_PFX_DA",
	"RM_PFX_1800",
	"CB2_SPARE",
}

/* Default Carrier Mapping strings
 *
 * PIC = Presubscribed Interexchange Carrier.
 */
var str_default_carrier = [DEFAULT_CARRIERS_MAX]string{
	"PIC Inter-LATA carrier       ",
	"Coin Inter-LATA carrier      ",
	"Creditcard Inter-LATA carrier",
	"PIC Intra-LATA carrier       ",
	"Coin Intra-LATA carrier      ",
	"Creditcard Intra-LATA carrier",
	"PIC Local carrier            ",
	"Coin Local carrier           ",
	"Creditcard Local carrier     ",
}

type carrier_table_entry_t struct {
	carrier_ref                byte
	carrier_num                uint16
	valid_cards                uint32
	display_prompt             [CARRIER_DISPLAY_PROMPT_LEN]byte
	control_byte2              byte
	control_byte               byte
	fgb_timer                  uint16
	international_accept_flags byte
	call_entry                 byte
}

type dlog_mt_carrier_table_t struct {
	id       byte
	defaults [DEFAULT_CARRIERS_MAX]byte
	carrier  [CARRIER_TABLE_MAX_CARRIERS]carrier_table_entry_t
	spare    [CARRIER_TABLE_SPARE_LEN]byte
}

/*------------------------------------------------------------------
 *
 * Name:	unused
 *
 * Purpose:	Report whether a carrier slot holds no entry.  A slot
 *		with carrier reference 0, call entry 0 and a prompt
 *		that does not start with a printable character is
 *		considered unused; it still occupies its array slot.
 *
 *---------------------------------------------------------------*/

func (e *carrier_table_entry_t) unused() bool {
	return e.display_prompt[0] < 0x20 && e.carrier_ref == 0 && e.call_entry == 0
}

/*------------------------------------------------------------------
 *
 * Name:	display_prompt_string
 *
 * Purpose:	The display prompt as text.  The stored bytes are not
 *		guaranteed NUL-filled; a prompt whose first byte is not
 *		printable renders as blanks.
 *
 *---------------------------------------------------------------*/

func (e *carrier_table_entry_t) display_prompt_string() string {
	if e.display_prompt[0] < 0x20 {
		return "                    "
	}
	return string(e.display_prompt[:])
}

func carrier_entry_decode(buf []byte) carrier_table_entry_t {
	var e carrier_table_entry_t
	e.carrier_ref = buf[0]
	e.carrier_num = binary.LittleEndian.Uint16(buf[1:3])
	e.valid_cards = binary.LittleEndian.Uint32(buf[3:7])
	copy(e.display_prompt[:], buf[7:27])
	e.control_byte2 = buf[27]
	e.control_byte = buf[28]
	e.fgb_timer = binary.LittleEndian.Uint16(buf[29:31])
	e.international_accept_flags = buf[31]
	e.call_entry = buf[32]
	return e
}

func carrier_entry_encode(e *carrier_table_entry_t, buf []byte) {
	buf[0] = e.carrier_ref
	binary.LittleEndian.PutUint16(buf[1:3], e.carrier_num)
	binary.LittleEndian.PutUint32(buf[3:7], e.valid_cards)
	copy(buf[7:27], e.display_prompt[:])
	buf[27] = e.control_byte2
	buf[28] = e.control_byte
	binary.LittleEndian.PutUint16(buf[29:31], e.fgb_timer)
	buf[31] = e.international_accept_flags
	buf[32] = e.call_entry
}

/*------------------------------------------------------------------
 *
 * Name:	carrier_table_decode
 *
 * Purpose:	Parse a carrier table payload (the file contents,
 *		without the leading table-ID byte).
 *
 * Inputs:	buf	- Exactly CARRIER_TABLE_LEN - 1 bytes.
 *
 * Returns:	Parsed table with the ID byte filled in, or an error
 *		when the payload size is wrong.
 *
 *---------------------------------------------------------------*/

func carrier_table_decode(buf []byte) (*dlog_mt_carrier_table_t, error) {
	if len(buf) != CARRIER_TABLE_LEN-1 {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, CARRIER_TABLE_LEN-1, len(buf))
	}

	var table dlog_mt_carrier_table_t
	table.id = DLOG_MT_CARRIER_TABLE_EXP

	copy(table.defaults[:], buf[0:DEFAULT_CARRIERS_MAX])

	var offset = DEFAULT_CARRIERS_MAX
	for i := 0; i < CARRIER_TABLE_MAX_CARRIERS; i++ {
		table.carrier[i] = carrier_entry_decode(buf[offset : offset+CARRIER_ENTRY_LEN])
		offset += CARRIER_ENTRY_LEN
	}

	copy(table.spare[:], buf[offset:])

	return &table, nil
}

/*------------------------------------------------------------------
 *
 * Name:	carrier_table_encode
 *
 * Purpose:	Serialize a carrier table back to its payload form,
 *		spare bytes re-emitted verbatim.
 *
 *---------------------------------------------------------------*/

func carrier_table_encode(table *dlog_mt_carrier_table_t) []byte {
	var buf = make([]byte, CARRIER_TABLE_LEN-1)

	copy(buf[0:DEFAULT_CARRIERS_MAX], table.defaults[:])

	var offset = DEFAULT_CARRIERS_MAX
	for i := 0; i < CARRIER_TABLE_MAX_CARRIERS; i++ {
		carrier_entry_encode(&table.carrier[i], buf[offset:offset+CARRIER_ENTRY_LEN])
		offset += CARRIER_ENTRY_LEN
	}

	copy(buf[offset:], table.spare[:])

	return buf
}

/*------------------------------------------------------------------
 *
 * Name:	carrier_table_apply_defaults
 *
 * Purpose:	Overwrite the table with the canonical factory carrier
 *		set: the nine leading entries are replaced, the default
 *		indexes are zeroed, and everything else (entries past
 *		the ninth, spare bytes, ID) is left as read.
 *
 *---------------------------------------------------------------*/

func carrier_table_apply_defaults(table *dlog_mt_carrier_table_t, defaults *[DEFAULT_CARRIERS_MAX]carrier_table_entry_t) {
	for i := range table.defaults {
		table.defaults[i] = 0
	}

	copy(table.carrier[:DEFAULT_CARRIERS_MAX], defaults[:])
}
