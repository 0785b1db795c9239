package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Read and write fixed-size binary table files.
 *
 * Description: Each table file holds exactly one table instance with
 *		no framing.  Offsets are only meaningful when the file
 *		is exactly the expected size, so a mismatch is fatal for
 *		that table: no partial parse, no padding, no truncation.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrSizeMismatch = errors.New("table size mismatch")
	ErrTableRead    = errors.New("error reading table")
	ErrTableWrite   = errors.New("error writing table")
)

/*------------------------------------------------------------------
 *
 * Name:	mm_validate_table_fsize
 *
 * Purpose:	Confirm a table file is exactly the expected size
 *		before any parse is attempted.
 *
 * Inputs:	table_id	- Table ID, for the error message only.
 *		actual		- File size in bytes.
 *		expected	- Expected table size in bytes.
 *
 * Returns:	nil on an exact match, ErrSizeMismatch otherwise.
 *
 *---------------------------------------------------------------*/

func mm_validate_table_fsize(table_id uint8, actual int64, expected int64) error {
	if actual != expected {
		return fmt.Errorf("%w: table %d (0x%02x) expected %d bytes, got %d",
			ErrSizeMismatch, table_id, table_id, expected, actual)
	}
	return nil
}

/*------------------------------------------------------------------
 *
 * Name:	read_table_file
 *
 * Purpose:	Read one table instance from a file into an owned
 *		buffer, validating the size first.
 *
 * Inputs:	filename	- Path to the table file.
 *		table_id	- Table ID, for error messages.
 *		expected	- Expected table size in bytes.
 *
 * Returns:	Buffer of exactly expected bytes, or an error.  No
 *		bytes are read when the size does not match.
 *
 *---------------------------------------------------------------*/

func read_table_file(filename string, table_id uint8, expected int) ([]byte, error) {
	var instream, err = os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer instream.Close()

	fi, err := instream.Stat()
	if err != nil {
		return nil, err
	}

	if err := mm_validate_table_fsize(table_id, fi.Size(), int64(expected)); err != nil {
		return nil, err
	}

	var buffer = make([]byte, expected)
	if _, err := io.ReadFull(instream, buffer); err != nil {
		return nil, fmt.Errorf("%w: table %d (0x%02x): %s", ErrTableRead, table_id, table_id, err)
	}

	return buffer, nil
}

/*------------------------------------------------------------------
 *
 * Name:	write_table_file
 *
 * Purpose:	Write one table instance to a file.
 *
 *---------------------------------------------------------------*/

func write_table_file(filename string, data []byte) error {
	var ostream, err = os.Create(filename)
	if err != nil {
		return err
	}

	if _, err := ostream.Write(data); err != nil {
		ostream.Close()
		return fmt.Errorf("%w: %s: %s", ErrTableWrite, filename, err)
	}

	if err := ostream.Close(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrTableWrite, filename, err)
	}

	return nil
}
