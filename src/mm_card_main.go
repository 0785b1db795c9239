package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Dump the MTR 1.x card table, and optionally write a
 *		copy rewritten for Manager-routed validation.
 *
 * Usage:	mm_card mm_table_16.bin [outputfile.bin]
 *
 *		With an output file, the carrier references are
 *		re-sequenced over the populated entries and the ACCS
 *		routing flag is cleared everywhere.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func MMCardMain() {
	var verbose = pflag.BoolP("verbose", "v", false, "Also hex dump the raw table payload.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede the banner with a 'strftime' format time stamp.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n"+
			"\tmm_card mm_table_%02x.bin [outputfile.bin]\n\n", DLOG_MT_CARD_TABLE)
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

	print_banner(*timestampFormat, DLOG_MT_CARD_TABLE)

	var buffer, err = read_table_file(pflag.Arg(0), DLOG_MT_CARD_TABLE, CARD_TABLE_MTR1_LEN)
	if err != nil {
		log.Fatal("Error reading card table", "file", pflag.Arg(0), "err", err)
	}

	table, err := card_table_mtr1_decode(buffer)
	if err != nil {
		log.Fatal("Error decoding card table", "err", err)
	}

	if *verbose {
		fmt.Printf("%s\n", dump_hex(buffer))
		fmt.Printf("CRC-16 of payload: 0x%04x\n\n", crc16(0, buffer))
	}

	fmt.Printf("+-------------------------------------------------------+---------------+\n" +
		"| Idx  | PAN St - End    | STD CD | Vfy | Carrier | Ref | P exp ini dis |\n" +
		"+------+-----------------+--------+-----+---------+-----+---------------+\n")

	for i := range table.c {
		var card = &table.c[i]

		if card.standard_cd == 0 {
			continue
		}

		fmt.Printf("|  %2d  | %02x%02x%02x - %02x%02x%02x | %s | x%02x |   0x%02x  | x%02x | P x%02x x%02x x%02x | %s\n",
			i,
			card.pan_start[0], card.pan_start[1], card.pan_start[2],
			card.pan_end[0], card.pan_end[1], card.pan_end[2],
			standard_cd_str[card.standard_cd&0x0F],
			card.vfy_flags,
			card.carrier_ref,
			card.ref_num,
			card.p_exp_date,
			card.p_init_date,
			card.p_disc_data,
			strings.Join(bits_to_strings(card.vfy_flags^CARD_VF_CALLING_CARD_IND, str_vfy_flags[:]), " | "))

		print_service_codes(card)

		fmt.Printf("+------+-----------------+--------+-----+---------+-----+---------------+\n")
	}

	if pflag.NArg() > 1 {
		update_card_mtr1_defaults(table)

		log.Info("Writing new table", "file", pflag.Arg(1))

		if err := write_table_file(pflag.Arg(1), card_table_mtr1_encode(table)); err != nil {
			log.Fatal("Error writing output file", "file", pflag.Arg(1), "err", err)
		}
	}
}

/* The service-code region displays differently per card standard:
   the ANSI family uses the credit-card view, smart cards the
   smart-card view, anything else shows raw bytes. */
func print_service_codes(card *card_entry_mtr1_t) {
	fmt.Printf("|      | Service Codes: ")

	switch card.standard_cd {
	case std_ansi, std_aba, std_cba, std_boc, std_ansi59, std_ccitt:
		var cc = card.svc_code.cc()
		for _, code := range cc.svc_code {
			fmt.Printf("%04x,", code)
		}
		fmt.Printf("Spill: ")
		for _, b := range cc.spill_string {
			fmt.Printf("%02x,", b)
		}
		fmt.Printf(" TC:%02x ", cc.term_char)
		fmt.Printf("DI:%02x |\n", cc.discount_index)
	case std_smcard:
		var sc = card.svc_code.sc()
		fmt.Printf("Ck Digits: ")
		for _, b := range sc.check_digits {
			fmt.Printf("%02x,", b)
		}
		fmt.Printf("     Ck Value: ")
		for _, b := range sc.check_value {
			fmt.Printf("%02x,", b)
		}
		fmt.Printf(" |\n|      |                Manufacturer: ")
		for _, b := range sc.manufacturer {
			fmt.Printf("%02x,", b)
		}
		fmt.Printf("     Discount Index: %02x                 |\n", sc.discount_index)
	default:
		for _, b := range card.svc_code.raw {
			fmt.Printf("%02x,", b)
		}
		fmt.Printf("         |\n")
	}
}
