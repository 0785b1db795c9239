package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Packed-BCD telephone digit codecs.
 *
 * Description:	The Millennium terminal stores telephone digits two per
 *		byte, high nibble first, but in two incompatible dialects:
 *
 *		  * Call-screening lists use "zero as sentinel": nibble 0
 *		    terminates the number, so the digit '0' is stored as
 *		    0xA.  Nibbles B-F appear in some tables with unknown
 *		    meaning and are passed through as letters.
 *
 *		  * Dialed numbers store each digit directly (0-9) and
 *		    terminate with an 0xE nibble.
 *
 *		Keep the two apart.  A call-screening buffer run through
 *		the dialed-number decoder silently turns every '0' into
 *		a ':' and vice versa.
 *
 *---------------------------------------------------------------*/

/* Lookup table to translate a call-screening nibble into text.
   Not sure what B, C, D, E, F are used for. */
var pn_lut = [16]byte{0, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', 'B', 'C', 'D', 'E', 'F'}

/*------------------------------------------------------------------
 *
 * Name:	string_to_bcd_a
 *
 * Purpose:	Encode a digit string into the zero-as-sentinel packed
 *		BCD dialect used by call-screening entries.
 *
 * Inputs:	number_string	- ASCII digits, '0' through '9'.
 *		buff_len	- Capacity of the output buffer in bytes.
 *
 * Returns:	The zero-filled output buffer of exactly buff_len bytes
 *		and the count of input characters consumed.  Input beyond
 *		2 * buff_len digits is silently dropped.
 *
 *---------------------------------------------------------------*/

func string_to_bcd_a(number_string string, buff_len int) ([]byte, int) {
	var buffer = make([]byte, buff_len)
	var i int

	for i = 0; i < len(number_string) && i < buff_len*2; i++ {
		var nibble byte
		if number_string[i] == '0' {
			nibble = 0x0a
		} else {
			nibble = number_string[i] - '0'
		}

		if i%2 == 0 {
			buffer[i>>1] = nibble << 4
		} else {
			buffer[i>>1] |= nibble
		}
	}

	return buffer, i
}

/*------------------------------------------------------------------
 *
 * Name:	callscrn_num_to_string
 *
 * Purpose:	Decode a zero-as-sentinel packed BCD number into text.
 *
 * Inputs:	num_buf		- Packed digits, high nibble first.
 *		string_buf_len	- Capacity of the destination, counting
 *				  the terminator.  Hard upper bound.
 *
 * Returns:	Decoded digit string.  A zero nibble terminates the
 *		number; 0xA decodes to '0', nibbles B-F to letters.
 *
 *---------------------------------------------------------------*/

func callscrn_num_to_string(num_buf []byte, string_buf_len int) string {
	var pstr []byte

	for _, b := range num_buf {
		for _, pn_digit := range [2]byte{b >> 4, b & 0x0f} {
			var c = pn_lut[pn_digit]
			if c == 0 {
				return string(pstr)
			}
			if len(pstr) >= string_buf_len-1 {
				return string(pstr)
			}
			pstr = append(pstr, c)
		}
	}

	return string(pstr)
}

/*------------------------------------------------------------------
 *
 * Name:	phone_num_to_string
 *
 * Purpose:	Decode a dialed phone number into text.
 *
 * Inputs:	num_buf		- Packed digits, high nibble first,
 *				  terminated by an 0xE nibble.
 *		string_buf_len	- Capacity of the destination, counting
 *				  the terminator.  Hard upper bound.
 *
 * Returns:	Decoded digit string.  Decoding stops at the 0xE nibble
 *		without emitting it.  Nibbles outside 0-9 other than 0xE
 *		are not expected in valid data; they are rendered
 *		arithmetically (nibble + '0') so malformed input still
 *		produces a bounded, printable result.
 *
 *---------------------------------------------------------------*/

func phone_num_to_string(num_buf []byte, string_buf_len int) string {
	var pstr []byte

	for _, b := range num_buf {
		for _, pn_digit := range [2]byte{b >> 4, b & 0x0f} {
			if pn_digit == 0x0e {
				return string(pstr)
			}
			if len(pstr) >= string_buf_len-1 {
				return string(pstr)
			}
			pstr = append(pstr, pn_digit+'0')
		}
	}

	return string(pstr)
}
