package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Convert an MTR 2.x expanded card table into the
 *		narrower MTR 1.x card table.
 *
 * Usage:	mm_convert_card mm_table_86.bin mm_table_16.bin
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func MMConvertCardMain() {
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede the banner with a 'strftime' format time stamp.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n"+
			"\tmm_convert_card mm_table_%02x.bin mm_table_%02x.bin\n\n",
			DLOG_MT_CARD_TABLE_EXP, DLOG_MT_CARD_TABLE)
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if pflag.NArg() < 2 {
		pflag.Usage()
		os.Exit(1)
	}

	print_banner(*timestampFormat, DLOG_MT_CARD_TABLE_EXP)
	fmt.Printf("Credit Card Table MTR 2 to MTR 1 Converter\n\n")

	var buffer, err = read_table_file(pflag.Arg(0), DLOG_MT_CARD_TABLE_EXP, CARD_TABLE_LEN)
	if err != nil {
		log.Fatal("Error reading MTR 2 card table", "file", pflag.Arg(0), "err", err)
	}

	mtr2, err := card_table_decode(buffer)
	if err != nil {
		log.Fatal("Error decoding MTR 2 card table", "err", err)
	}

	var mtr1 = convert_card_mtr2_to_mtr1(mtr2)

	log.Info("Writing new table", "file", pflag.Arg(1))

	if err := write_table_file(pflag.Arg(1), card_table_mtr1_encode(mtr1)); err != nil {
		log.Fatal("Error writing output file", "file", pflag.Arg(1), "err", err)
	}
}
