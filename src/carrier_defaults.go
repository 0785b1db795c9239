package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:	Canonical factory-default carrier entries.
 *
 * Description:	Nine entries, one per PIC/Coin/Card x Inter-LATA/
 *		Intra-LATA/Local combination.  Each carries a fixed
 *		20-character display prompt, all remote-carrier-prefix
 *		bits in control byte 2, the coin/cash-card and custom-
 *		prompt bits in the control byte, a 500 tick Feature
 *		Group B timer, and no international accept flags.
 *
 *		An optional carriers.yaml data file can override the
 *		prompts and timers for sites that brand the display,
 *		in the same spirit as the tocalls.yaml device data the
 *		APRS tools load at run time.  Without the file the
 *		builtin set is used.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const CB2_DEFAULT = CB2_REM_CARRIER_PREFIX_ZM_LOCAL |
	CB2_REM_CARRIER_PREFIX_INTRALATA |
	CB2_REM_CARRIER_PREFIX_INTERLATA |
	CB2_REM_CARRIER_PREFIX_INTERNATIONAL |
	CB2_REM_CARRIER_PREFIX_DA |
	CB2_REM_CARRIER_PREFIX_1800

const CB_DEFAULT = CB_USE_SPEC_DISPLAY_PROMPT | CB_ACCEPTS_COIN_CASH_CARDS

const DEFAULT_FGB_TIMER = 500

var default_carrier_prompts = [DEFAULT_CARRIERS_MAX]string{
	"C0 PIC  Inter-LATA  ",
	"C1 Coin Inter-LATA  ",
	"C2 Card Inter-LATA  ",
	"C3 PIC  Intra-LATA  ",
	"C4 Coin Intra-LATA  ",
	"C5 Card Intra-LATA  ",
	"C6 PIC  Local       ",
	"C7 Coin Local       ",
	"C8 Card Local       ",
}

/*------------------------------------------------------------------
 *
 * Name:	default_carriers
 *
 * Purpose:	Build the canonical factory-default carrier array.
 *
 *---------------------------------------------------------------*/

func default_carriers() [DEFAULT_CARRIERS_MAX]carrier_table_entry_t {
	var carriers [DEFAULT_CARRIERS_MAX]carrier_table_entry_t

	for i := range carriers {
		carriers[i] = carrier_table_entry_t{
			carrier_ref:                byte(i),
			carrier_num:                0x0000,
			valid_cards:                0x00003fff,
			control_byte2:              CB2_DEFAULT,
			control_byte:               CB_DEFAULT,
			fgb_timer:                  DEFAULT_FGB_TIMER,
			international_accept_flags: 0,
			call_entry:                 0x00,
		}
		copy(carriers[i].display_prompt[:], default_carrier_prompts[i])
	}

	return carriers
}

/* carriers.yaml, when present:
 *
 * carriers:
 *   - ref: 0
 *     prompt: "ACME TELECOM INTER  "
 *     fgbtimer: 500
 */

type carrier_override struct {
	Ref      int    `yaml:"ref"`
	Prompt   string `yaml:"prompt"`
	FGBTimer int    `yaml:"fgbtimer"`
}

type carrier_override_file struct {
	Carriers []carrier_override `yaml:"carriers"`
}

var carrier_defaults_search_locations = []string{
	"carriers.yaml",      // Current working directory
	"data/carriers.yaml", // Repository layout
}

/*------------------------------------------------------------------
 *
 * Name:	load_default_carriers
 *
 * Purpose:	The factory-default carrier set, with any overrides
 *		from a carriers.yaml data file applied.
 *
 * Returns:	The carrier array and the name of the data file used,
 *		empty when the builtin set was used unmodified.  A
 *		malformed data file is an error; a missing one is not.
 *
 *---------------------------------------------------------------*/

func load_default_carriers() ([DEFAULT_CARRIERS_MAX]carrier_table_entry_t, string, error) {
	var carriers = default_carriers()

	for _, location := range carrier_defaults_search_locations {
		var data, err = os.ReadFile(location)
		if err != nil {
			continue
		}

		var overrides carrier_override_file
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return carriers, location, fmt.Errorf("parsing %s: %w", location, err)
		}

		for _, o := range overrides.Carriers {
			if o.Ref < 0 || o.Ref >= DEFAULT_CARRIERS_MAX {
				return carriers, location, fmt.Errorf("%s: carrier ref %d out of range", location, o.Ref)
			}
			if o.Prompt != "" {
				var prompt [CARRIER_DISPLAY_PROMPT_LEN]byte
				for i := range prompt {
					prompt[i] = ' '
				}
				copy(prompt[:], o.Prompt)
				carriers[o.Ref].display_prompt = prompt
			}
			if o.FGBTimer > 0 {
				carriers[o.Ref].fgb_timer = uint16(o.FGBTimer)
			}
		}

		return carriers, location, nil
	}

	return carriers, "", nil
}
