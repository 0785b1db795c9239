package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	CARD table data structures and codec.
 *
 * Description:	The card table holds payment-card validation rules.
 *		Two revisions exist: the expanded MTR 2.x table (0x86,
 *		32 entries of 36 bytes) and the MTR 1.x table (0x16,
 *		20 entries of 33 bytes).  The MTR 1.x entry is a strict
 *		prefix of the MTR 2.x entry: same fields in the same
 *		order, minus the trailing control_info, bank_info and
 *		lang_code bytes.
 *
 *		All multi-byte fields are little-endian, matching the
 *		packed structures exchanged with the terminal.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
)

const (
	CCARD_MAX          = 32 /* Number of entries in CARD table MTR 2.x */
	CCARD_MAX_MTR1     = 20 /* Number of entries in CARD table MTR 1.x */
	SERVICE_CODE_LEN   = 20
	SVC_CODE_MAX       = 5
	SPILL_STRING_LEN   = 8
	SC_CHECK_DIGIT_LEN = 6
	SC_CHECK_VALUE_LEN = 8
	SC_MANUF_LEN       = 5

	CARD_ENTRY_LEN      = 36
	CARD_ENTRY_MTR1_LEN = 33

	CARD_TABLE_LEN      = CCARD_MAX * CARD_ENTRY_LEN           /* 1152 */
	CARD_TABLE_MTR1_LEN = CCARD_MAX_MTR1 * CARD_ENTRY_MTR1_LEN /* 660 */
)

/* Standard (validation) card types, low nibble of standard_cd. */
const (
	std_undefined = iota
	std_mod10
	std_ansi
	std_aba
	std_cba
	std_boc
	std_ansi59
	std_ccitt
	std_pinoff
	std_hello
	std_smcard
	std_reserved
	std_scgpm416
	std_sc_pcos
	std_sc_mpcos
	std_proton
)

var standard_cd_str = [16]string{
	"Undefd",
	"MOD 10",
	"ANSI  ",
	"ABA   ",
	"CBA   ",
	"BOC   ",
	"ANSI59",
	"CCITT ",
	"PINOFF",
	"HELLO ",
	"SMCARD",
	"Resv'd",
	"SCGPM4",
	"SCPCOS",
	"SCMPCO",
	"PROTON",
}

/* Verification flag bits of vfy_flags. */
const (
	CARD_VF_MOD10_IND                 = 1 << 0 /* Mod 10 check before hotlist add. */
	CARD_VF_NCCVAL_IND                = 1 << 1 /* Manager must validate before call. */
	CARD_VF_CALLING_CARD_IND          = 1 << 2 /* Inverted: 1 means NOT a calling card. */
	CARD_VF_IMMEDIATE_AUTH_IND        = 1 << 3 /* Authorize on withdrawal, not on dial. */
	CARD_VF_SERVICE_CD_VALIDATION_IND = 1 << 4 /* Positive service-code validation. */
	CARD_VF_PROMPT_FOR_PIN            = 1 << 5
	CARD_VF_PROMPT_FOR_TELCO_PIN      = 1 << 6
	CARD_VF_ACCS_ROUTING              = 1 << 7 /* 1 means route to ACCS, not the Manager. */
)

var str_vfy_flags = [8]string{
	"MOD10 IND ",
	"NCCVAL IND",
	"CALLING CD",
	"IMMED AUTH",
	"SVC CD VAL",
	"PROMPT PIN",
	"TELCO PIN ",
	"ACCS ROUTE",
}

/* The 20-byte service-code region is a union in the terminal: the
   credit-card view for the ANSI-family standards, the smart-card view
   for SMCARD. The raw bytes are authoritative; the views decode them. */

type service_code_t struct {
	raw [SERVICE_CODE_LEN]byte
}

type service_code_cc_t struct {
	svc_code       [SVC_CODE_MAX]uint16
	spill_string   [SPILL_STRING_LEN]byte
	term_char      byte
	discount_index byte
}

type service_code_sc_t struct {
	check_digits   [SC_CHECK_DIGIT_LEN]byte
	check_value    [SC_CHECK_VALUE_LEN]byte
	manufacturer   [SC_MANUF_LEN]byte
	discount_index byte
}

func (s *service_code_t) cc() service_code_cc_t {
	var cc service_code_cc_t
	for i := 0; i < SVC_CODE_MAX; i++ {
		cc.svc_code[i] = binary.LittleEndian.Uint16(s.raw[i*2 : i*2+2])
	}
	copy(cc.spill_string[:], s.raw[10:18])
	cc.term_char = s.raw[18]
	cc.discount_index = s.raw[19]
	return cc
}

func (s *service_code_t) sc() service_code_sc_t {
	var sc service_code_sc_t
	copy(sc.check_digits[:], s.raw[0:6])
	copy(sc.check_value[:], s.raw[6:14])
	copy(sc.manufacturer[:], s.raw[14:19])
	sc.discount_index = s.raw[19]
	return sc
}

/* CARD (Expanded Card table, MTR 2.x) entry. */
type card_entry_t struct {
	pan_start    [3]byte /* Credit Card PAN-range start. */
	pan_end      [3]byte /* Credit Card PAN-range end. */
	standard_cd  byte
	vfy_flags    byte
	p_exp_date   byte
	p_init_date  byte
	p_disc_data  byte
	svc_code     service_code_t
	ref_num      byte
	carrier_ref  byte /* Cross references the carrier in other tables. */
	control_info byte
	bank_info    byte
	lang_code    byte
}

/* CARD (Card table, MTR 1.x) entry.  Strict prefix of card_entry_t. */
type card_entry_mtr1_t struct {
	pan_start   [3]byte
	pan_end     [3]byte
	standard_cd byte
	vfy_flags   byte
	p_exp_date  byte
	p_init_date byte
	p_disc_data byte
	svc_code    service_code_t
	ref_num     byte
	carrier_ref byte
}

type dlog_mt_card_table_t struct {
	c [CCARD_MAX]card_entry_t
}

type dlog_mt_card_table_mtr1_t struct {
	c [CCARD_MAX_MTR1]card_entry_mtr1_t
}

func card_entry_decode(buf []byte) card_entry_t {
	var e card_entry_t
	copy(e.pan_start[:], buf[0:3])
	copy(e.pan_end[:], buf[3:6])
	e.standard_cd = buf[6]
	e.vfy_flags = buf[7]
	e.p_exp_date = buf[8]
	e.p_init_date = buf[9]
	e.p_disc_data = buf[10]
	copy(e.svc_code.raw[:], buf[11:31])
	e.ref_num = buf[31]
	e.carrier_ref = buf[32]
	e.control_info = buf[33]
	e.bank_info = buf[34]
	e.lang_code = buf[35]
	return e
}

func card_entry_encode(e *card_entry_t, buf []byte) {
	copy(buf[0:3], e.pan_start[:])
	copy(buf[3:6], e.pan_end[:])
	buf[6] = e.standard_cd
	buf[7] = e.vfy_flags
	buf[8] = e.p_exp_date
	buf[9] = e.p_init_date
	buf[10] = e.p_disc_data
	copy(buf[11:31], e.svc_code.raw[:])
	buf[31] = e.ref_num
	buf[32] = e.carrier_ref
	buf[33] = e.control_info
	buf[34] = e.bank_info
	buf[35] = e.lang_code
}

func card_entry_mtr1_decode(buf []byte) card_entry_mtr1_t {
	var e card_entry_mtr1_t
	copy(e.pan_start[:], buf[0:3])
	copy(e.pan_end[:], buf[3:6])
	e.standard_cd = buf[6]
	e.vfy_flags = buf[7]
	e.p_exp_date = buf[8]
	e.p_init_date = buf[9]
	e.p_disc_data = buf[10]
	copy(e.svc_code.raw[:], buf[11:31])
	e.ref_num = buf[31]
	e.carrier_ref = buf[32]
	return e
}

func card_entry_mtr1_encode(e *card_entry_mtr1_t, buf []byte) {
	copy(buf[0:3], e.pan_start[:])
	copy(buf[3:6], e.pan_end[:])
	buf[6] = e.standard_cd
	buf[7] = e.vfy_flags
	buf[8] = e.p_exp_date
	buf[9] = e.p_init_date
	buf[10] = e.p_disc_data
	copy(buf[11:31], e.svc_code.raw[:])
	buf[31] = e.ref_num
	buf[32] = e.carrier_ref
}

/*------------------------------------------------------------------
 *
 * Name:	card_table_decode / card_table_encode
 *
 * Purpose:	Convert between the on-disk MTR 2.x card table and its
 *		in-memory form.  The buffer must already have been
 *		size-validated.
 *
 *---------------------------------------------------------------*/

func card_table_decode(buf []byte) (*dlog_mt_card_table_t, error) {
	if len(buf) != CARD_TABLE_LEN {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, CARD_TABLE_LEN, len(buf))
	}

	var table dlog_mt_card_table_t
	for i := 0; i < CCARD_MAX; i++ {
		table.c[i] = card_entry_decode(buf[i*CARD_ENTRY_LEN : (i+1)*CARD_ENTRY_LEN])
	}
	return &table, nil
}

func card_table_encode(table *dlog_mt_card_table_t) []byte {
	var buf = make([]byte, CARD_TABLE_LEN)
	for i := 0; i < CCARD_MAX; i++ {
		card_entry_encode(&table.c[i], buf[i*CARD_ENTRY_LEN:(i+1)*CARD_ENTRY_LEN])
	}
	return buf
}

func card_table_mtr1_decode(buf []byte) (*dlog_mt_card_table_mtr1_t, error) {
	if len(buf) != CARD_TABLE_MTR1_LEN {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, CARD_TABLE_MTR1_LEN, len(buf))
	}

	var table dlog_mt_card_table_mtr1_t
	for i := 0; i < CCARD_MAX_MTR1; i++ {
		table.c[i] = card_entry_mtr1_decode(buf[i*CARD_ENTRY_MTR1_LEN : (i+1)*CARD_ENTRY_MTR1_LEN])
	}
	return &table, nil
}

func card_table_mtr1_encode(table *dlog_mt_card_table_mtr1_t) []byte {
	var buf = make([]byte, CARD_TABLE_MTR1_LEN)
	for i := 0; i < CCARD_MAX_MTR1; i++ {
		card_entry_mtr1_encode(&table.c[i], buf[i*CARD_ENTRY_MTR1_LEN:(i+1)*CARD_ENTRY_MTR1_LEN])
	}
	return buf
}
