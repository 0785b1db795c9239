package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Decode bitmask fields and CALLTYP bytes into labels.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
)

var ErrBufferTooSmall = errors.New("string buffer too small")

/* Call Type (lower 4-bits) of CALLTYP */
var call_type_str = [16]string{
	"Incoming",
	"Unanswered",
	"Abandoned",
	"Local",
	"Intra-LATA",
	"Inter-LATA",
	"Internatonal",
	"Operator",
	"Zero+",
	"1-800",
	"Directory Assistance",
	"Denied",
	"Unassigned",
	"Unassigned2",
	"e-Purse",
	"Unknown",
}

/* Payment Type (upper 4-bits) of CALLTYP */
var pmt_type_str = [16]string{
	"Unused0",
	"Unused1",
	"No Charge",
	"Coin",
	"Credit Card",
	"Calling Card",
	"Cash Card",
	"Inmate",
	"Mondex",
	"Visa Stored Value",
	"Smart City",
	"Proton",
	"UndefinedC",
	"UndefinedD",
	"UndefinedE",
	"UndefinedF",
}

/*------------------------------------------------------------------
 *
 * Name:	bits_to_strings
 *
 * Purpose:	Map the set bits of a mask to their labels.
 *
 * Inputs:	bits		- 8-bit mask.
 *		str_array	- Label for each bit position, LSB first.
 *				  Must cover the highest bit that can be
 *				  set for the field; that is a programming
 *				  error, not a data error.
 *
 * Returns:	Labels of the set bits in ascending bit order.
 *		Empty for a zero mask.
 *
 *---------------------------------------------------------------*/

func bits_to_strings(bits uint8, str_array []string) []string {
	var labels []string
	var i = 0

	for bits != 0 {
		if bits&1 != 0 {
			labels = append(labels, str_array[i])
		}
		bits >>= 1
		i++
	}

	return labels
}

/*------------------------------------------------------------------
 *
 * Name:	call_type_to_string
 *
 * Purpose:	Render a CALLTYP byte as "<call type> <payment type>".
 *
 * Inputs:	call_type	- CALLTYP byte; call type in the low
 *				  nibble, payment type in the high.
 *		string_buf_len	- Capacity available to the caller,
 *				  counting the terminator.
 *
 * Returns:	Formatted string, or ErrBufferTooSmall when the result
 *		would not fit in string_buf_len.
 *
 *---------------------------------------------------------------*/

func call_type_to_string(call_type uint8, string_buf_len int) (string, error) {
	var s = fmt.Sprintf("%s %s", call_type_str[call_type&0x0f], pmt_type_str[call_type>>4])

	if len(s)+1 > string_buf_len {
		return "", ErrBufferTooSmall
	}

	return s, nil
}
