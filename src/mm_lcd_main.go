package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Dump an LCD (local call determination) table in any
 *		of its three compression levels.
 *
 * Usage:	mm_lcd mm_table_88.bin
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func MMLcdMain() {
	var raw = pflag.BoolP("raw", "r", false, "Show numeric flag values instead of rate labels.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede the banner with a 'strftime' format time stamp.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n"+
			"\tmm_lcd mm_table_%02x.bin\n\n", DLOG_MT_LCD_TABLE_1)
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(1)
	}

	print_banner(*timestampFormat, DLOG_MT_LCD_TABLE_1)

	// The three layouts are told apart by file size alone, so size
	// validation happens against whichever layout the file matches.
	var fi, err = os.Stat(pflag.Arg(0))
	if err != nil {
		log.Fatal("Error opening LCD table", "file", pflag.Arg(0), "err", err)
	}

	var expected = int(fi.Size())
	switch expected + 1 {
	case LCD_TABLE_LEN, COMPRESSED_LCD_TABLE_LEN, DOUBLE_COMPRESSED_LCD_TABLE_LEN:
	default:
		log.Fatal("Invalid LCD table size", "file", pflag.Arg(0), "size", fi.Size())
	}

	buffer, err := read_table_file(pflag.Arg(0), DLOG_MT_LCD_TABLE_1, expected)
	if err != nil {
		log.Fatal("Error reading LCD table", "file", pflag.Arg(0), "err", err)
	}

	table, err := lcd_table_decode(buffer)
	if err != nil {
		log.Fatal("Error decoding LCD table", "err", err)
	}

	fmt.Printf("%s.\n", lcd_table_size_to_string(table.size))

	for nxx := LCD_NXX_MIN; nxx <= LCD_NXX_MAX; nxx++ {
		if nxx%200 == 0 {
			fmt.Printf("\n+---------------------------------------------------------------------+\n" +
				"| NPA-NXX |  0  |  1  |  2  |  3  |  4  |  5  |  6  |  7  |  8  |  9  |\n" +
				"+---------+-----+-----+-----+-----+-----+-----+-----+-----+-----+-----+")
		}

		if nxx%10 == 0 {
			fmt.Printf("\n| %03d-%02dx |", table.npa, nxx/10)
		}

		if *raw {
			fmt.Printf("  %d  |", table.flag(nxx))
		} else {
			fmt.Printf(" %s |", table.flag_string(nxx))
		}
	}

	fmt.Printf("\n+---------------------------------------------------------------------+\n")
}
