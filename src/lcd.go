package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	LCD (local call determination) table codec.
 *
 * Description:	The LCD table classifies every NXX in the range
 *		200-999 for one NPA.  The first two payload bytes hold
 *		the NPA in packed BCD followed by an 0xE check digit;
 *		NPA 408 is stored as 0x40 0x8e.
 *
 *		Three layouts exist, differing only in how many NXX
 *		entries share a byte:
 *
 *		  * uncompressed        - one byte per NXX
 *		  * compressed          - two NXX per byte (4 bits each)
 *		  * double compressed   - four NXX per byte (2 bits each)
 *
 *		The two-bit flags encode 0 = local rate, 2 = intra-LATA
 *		toll, 3 = invalid (N11, the NPA itself).  The wider
 *		layouts have room for more classes, including 4 =
 *		inter-LATA toll.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
)

const (
	LCD_NXX_MIN   = 200
	LCD_NXX_MAX   = 999
	LCD_NXX_COUNT = LCD_NXX_MAX - LCD_NXX_MIN + 1 /* 800 */

	/* Table sizes include the leading table-ID byte, which is not
	   stored on disk. */
	LCD_TABLE_LEN                   = 1 + 2 + LCD_NXX_COUNT   /* 803 */
	COMPRESSED_LCD_TABLE_LEN        = 1 + 2 + LCD_NXX_COUNT/2 /* 403 */
	DOUBLE_COMPRESSED_LCD_TABLE_LEN = 1 + 2 + LCD_NXX_COUNT/4 /* 203 */
)

/* Rate flag labels for the double-compressed (two bits per NXX) layout. */
var str_lcd_flags = [4]string{
	" L ", /* 0 - Local */
	" ? ", /* 1 - ??? Inter-LATA toll? */
	"$LD", /* 2 - Intra-LATA toll */
	" - ", /* 3 - Invalid NPA/NXX */
}

/* Rate flag labels for the wider MTR 1.x layouts. */
var str_lcd_flags_mtr1 = [16]string{
	" L ", /* 0 - Local */
	" ? ", /* 1 - LMS */
	"$LD", /* 2 - Intra-LATA toll */
	" - ", /* 3 - Invalid NPA/NXX */
	"$$$", /* 4 - Inter-LATA toll */
	"  5",
	"  6",
	"  7",
	"  8",
	"  9",
	" 10",
	" 11",
	" 12",
	" 13",
	" 14",
	" 15",
}

var ErrInvalidLCDTable = errors.New("invalid LCD table")

type lcd_table_t struct {
	size  int /* One of the three payload-plus-ID sizes above. */
	npa   int
	flags [LCD_NXX_COUNT]uint8 /* Indexed by NXX - LCD_NXX_MIN. */
}

func (t *lcd_table_t) flag(nxx int) uint8 {
	return t.flags[nxx-LCD_NXX_MIN]
}

func (t *lcd_table_t) flag_string(nxx int) string {
	if t.size == DOUBLE_COMPRESSED_LCD_TABLE_LEN {
		return str_lcd_flags[t.flag(nxx)&0x03]
	}
	return str_lcd_flags_mtr1[t.flag(nxx)&0x0f]
}

/*------------------------------------------------------------------
 *
 * Name:	lcd_table_size_to_string
 *
 * Purpose:	Human name for a payload size, used in tool banners.
 *
 *---------------------------------------------------------------*/

func lcd_table_size_to_string(size int) string {
	switch size {
	case LCD_TABLE_LEN:
		return "Uncompressed LCD table"
	case COMPRESSED_LCD_TABLE_LEN:
		return "Compressed LCD table"
	case DOUBLE_COMPRESSED_LCD_TABLE_LEN:
		return "Double-compressed LCD table"
	default:
		return "Invalid LCD table"
	}
}

/*------------------------------------------------------------------
 *
 * Name:	lcd_table_decode
 *
 * Purpose:	Parse an LCD table payload (the file contents, without
 *		the leading table-ID byte), auto-detecting which of the
 *		three layouts it uses from its size.
 *
 * Returns:	Decoded table, or an error for an unrecognized size,
 *		an NPA outside 200-999, or a bad check digit.
 *
 *---------------------------------------------------------------*/

func lcd_table_decode(buf []byte) (*lcd_table_t, error) {
	var table lcd_table_t
	table.size = len(buf) + 1

	switch table.size {
	case LCD_TABLE_LEN, COMPRESSED_LCD_TABLE_LEN, DOUBLE_COMPRESSED_LCD_TABLE_LEN:
	default:
		return nil, fmt.Errorf("%w: unrecognized size %d", ErrInvalidLCDTable, len(buf))
	}

	var npa_char = [2]byte{buf[0], buf[1]}

	if npa_char[0] < 0x20 || npa_char[0] > 0x99 {
		return nil, fmt.Errorf("%w: NPA must be in the range of 200-999", ErrInvalidLCDTable)
	}

	if npa_char[1]&0x0f != 0x0e {
		return nil, fmt.Errorf("%w: check digit 0x%x, expected 0xe", ErrInvalidLCDTable, npa_char[1]&0x0f)
	}

	table.npa = int(npa_char[0]>>4)*100 + int(npa_char[0]&0x0f)*10 + int(npa_char[1]>>4)

	var lcd = buf[2:]

	for nxx := LCD_NXX_MIN; nxx <= LCD_NXX_MAX; nxx++ {
		var i = nxx - LCD_NXX_MIN

		switch table.size {
		case LCD_TABLE_LEN:
			table.flags[i] = lcd[i]
		case COMPRESSED_LCD_TABLE_LEN:
			if i%2 == 0 {
				table.flags[i] = lcd[i/2] >> 4
			} else {
				table.flags[i] = lcd[i/2] & 0x0f
			}
		case DOUBLE_COMPRESSED_LCD_TABLE_LEN:
			var shift = 6 - (i%4)*2
			table.flags[i] = (lcd[i/4] >> shift) & 0x03
		}
	}

	return &table, nil
}
