package mmanager

/*-------------------------------------------------------------
 *
 * Purpose:	CRC-16 checksum used for Millennium table integrity.
 *
 * Description:	Reflected CRC-16 using the 0xA001 polynomial, seed in,
 *		seed out.  The terminal and the Manager both compute it
 *		over raw table bytes, so the running value can be carried
 *		across buffers: crc16(crc16(s, a), b) is identical to
 *		computing over the concatenation of a and b, and an empty
 *		buffer leaves the seed unchanged.
 *
 *--------------------------------------------------------------*/

/* Polynomial to use for CRC-16 calculation. */
const CRC16_POLY = 0xa001

/*-------------------------------------------------------------
 *
 * Name:	crc16
 *
 * Purpose:	Compute a running CRC-16 over a byte buffer.
 *
 * Inputs:	crc	- Running value (seed for the first buffer).
 *		data	- Bytes to fold into the running value.
 *
 * Returns:	Updated 16-bit running value.
 *
 *--------------------------------------------------------------*/

func crc16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ CRC16_POLY
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
