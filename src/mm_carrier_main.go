package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Dump the expanded carrier table, and optionally write
 *		a copy reset to the factory-default carrier set.
 *
 * Usage:	mm_carrier mm_table_87.bin [outputfile.bin]
 *
 *		With an output file, the nine leading carrier entries
 *		are replaced with the canonical defaults, the default-
 *		carrier indexes are zeroed, and everything else round-
 *		trips byte for byte.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func MMCarrierMain() {
	var verbose = pflag.BoolP("verbose", "v", false, "Also hex dump the raw table payload.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede the banner with a 'strftime' format time stamp.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n"+
			"\tmm_carrier mm_table_%02x.bin [outputfile.bin]\n\n", DLOG_MT_CARRIER_TABLE_EXP)
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

	print_banner(*timestampFormat, DLOG_MT_CARRIER_TABLE_EXP)

	var buffer, err = read_table_file(pflag.Arg(0), DLOG_MT_CARRIER_TABLE_EXP, CARRIER_TABLE_LEN-1)
	if err != nil {
		log.Fatal("Error reading carrier table", "file", pflag.Arg(0), "err", err)
	}

	table, err := carrier_table_decode(buffer)
	if err != nil {
		log.Fatal("Error decoding carrier table", "err", err)
	}

	if *verbose {
		fmt.Printf("%s\n", dump_hex(buffer))
		fmt.Printf("CRC-16 of payload: 0x%04x\n\n", crc16(0, buffer))
	}

	fmt.Printf("Default Carriers:\n")

	for i, d := range table.defaults {
		fmt.Printf("\t%d %s = 0x%02x (%3d)\n", i, str_default_carrier[i], d, d)
	}

	fmt.Printf("\n+---------------------------------------------------------------------------------------------------------------------+\n" +
		"|  # | Ref  | Number | Valid Cards | Display Prompt       |  CB2 |  CB  | FGB Tmr | Int'l | Call Entry | CB2/CB Flags |\n" +
		"+----+------+--------+-------------+----------------------+------+------+---------+-------+------------+--------------+\n")

	for i := range table.carrier {
		var entry = &table.carrier[i]

		if entry.unused() {
			continue
		}

		var flags = append(
			bits_to_strings(entry.control_byte2, str_cb2),
			bits_to_strings(entry.control_byte, str_cb)...)

		fmt.Printf("| %2d | 0x%02x | 0x%04x |  0x%08x | %s | 0x%02x | 0x%02x |  %5d  |  0x%02x | 0x%02x   %3d | %s\n",
			i,
			entry.carrier_ref,
			entry.carrier_num,
			entry.valid_cards,
			entry.display_prompt_string(),
			entry.control_byte2,
			entry.control_byte,
			entry.fgb_timer,
			entry.international_accept_flags,
			entry.call_entry,
			entry.call_entry,
			strings.Join(flags, " | "))
	}

	fmt.Printf("+------------------------------------------------------------------------------------------------------+\n")

	fmt.Printf("Spare: ")
	for _, s := range table.spare {
		fmt.Printf("0x%02x, ", s)
	}
	fmt.Printf("\n")

	if pflag.NArg() > 1 {
		var defaults, location, derr = load_default_carriers()
		if derr != nil {
			log.Fatal("Error loading carrier defaults", "err", derr)
		}
		if location != "" {
			log.Info("Loaded carrier default overrides", "file", location)
		}

		carrier_table_apply_defaults(table, &defaults)

		log.Info("Writing new table", "file", pflag.Arg(1))

		if err := write_table_file(pflag.Arg(1), carrier_table_encode(table)); err != nil {
			log.Fatal("Error writing output file", "file", pflag.Arg(1), "err", err)
		}
	}
}

/*------------------------------------------------------------------
 *
 * Name:	print_banner
 *
 * Purpose:	Common tool banner, optionally preceded by a time
 *		stamp in 'strftime' format.
 *
 *---------------------------------------------------------------*/

func print_banner(timestamp_format string, table_id uint8) {
	if timestamp_format != "" {
		var ts, err = strftime.Format(timestamp_format, time.Now())
		if err != nil {
			log.Error("Bad timestamp format", "format", timestamp_format, "err", err)
		} else {
			fmt.Printf("%s ", ts)
		}
	}

	fmt.Printf("Nortel Millennium %s Table %d (0x%02x) Dump\n\n", table_to_string(table_id), table_id, table_id)
}
