package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Render a byte buffer as a hex dump with a printable
 *		ASCII gutter, 16 bytes per row.  Returns a string so
 *		the caller decides where it goes.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

func dump_hex(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder

	for row := 0; row < len(data); row += 16 {
		var end = row + 16
		if end > len(data) {
			end = len(data)
		}

		fmt.Fprintf(&sb, "\t%03d: ", row)

		var ascii [16]byte
		for i := row; i < end; i++ {
			fmt.Fprintf(&sb, "%02x, ", data[i])
			if data[i] >= 0x20 && data[i] < 0x7F {
				ascii[i-row] = data[i]
			} else {
				ascii[i-row] = '.'
			}
		}

		for i := end; i < row+16; i++ {
			sb.WriteString("    ")
		}

		sb.Write(ascii[:end-row])
		sb.WriteByte('\n')
	}

	return sb.String()
}
