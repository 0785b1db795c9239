package mmanager

/*------------------------------------------------------------------
 *
 * Purpose:   	Down-convert an MTR 2.x card table to MTR 1.x.
 *
 * Description:	The MTR 1.x entry is the leading field range of the
 *		MTR 2.x entry, so conversion truncates each entry and
 *		drops the table slots past CCARD_MAX_MTR1.  The copy is
 *		spelled out field by field rather than as a byte-range
 *		memcpy so the copied length can never drift from the
 *		record layout.
 *
 *---------------------------------------------------------------*/

/*------------------------------------------------------------------
 *
 * Name:	card_entry_to_mtr1
 *
 * Purpose:	Truncate one MTR 2.x card entry to the MTR 1.x layout.
 *		control_info, bank_info and lang_code are dropped; the
 *		remaining fields copy over unchanged and in order.
 *
 *---------------------------------------------------------------*/

func card_entry_to_mtr1(e *card_entry_t) card_entry_mtr1_t {
	return card_entry_mtr1_t{
		pan_start:   e.pan_start,
		pan_end:     e.pan_end,
		standard_cd: e.standard_cd,
		vfy_flags:   e.vfy_flags,
		p_exp_date:  e.p_exp_date,
		p_init_date: e.p_init_date,
		p_disc_data: e.p_disc_data,
		svc_code:    e.svc_code,
		ref_num:     e.ref_num,
		carrier_ref: e.carrier_ref,
	}
}

/*------------------------------------------------------------------
 *
 * Name:	convert_card_mtr2_to_mtr1
 *
 * Purpose:	Produce an MTR 1.x card table from an MTR 2.x one.
 *
 * Inputs:	mtr2	- Size-validated MTR 2.x table.  Not modified.
 *
 * Returns:	New MTR 1.x table.  Entry i always comes from entry i;
 *		no reordering, no filtering.  Total for any input.
 *
 *---------------------------------------------------------------*/

func convert_card_mtr2_to_mtr1(mtr2 *dlog_mt_card_table_t) *dlog_mt_card_table_mtr1_t {
	var mtr1 dlog_mt_card_table_mtr1_t

	for i := 0; i < CCARD_MAX_MTR1; i++ {
		mtr1.c[i] = card_entry_to_mtr1(&mtr2.c[i])
	}

	return &mtr1
}

/*------------------------------------------------------------------
 *
 * Name:	update_card_mtr1_defaults
 *
 * Purpose:	Rewrite an MTR 1.x card table for Manager-routed
 *		operation: re-sequence the carrier references over the
 *		populated entries and clear the ACCS routing flag on
 *		every entry so validation goes to the Manager.
 *
 *---------------------------------------------------------------*/

func update_card_mtr1_defaults(table *dlog_mt_card_table_mtr1_t) {
	var carrier_refs = [14]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
		0x01, 0x02, 0x03, 0x04, 0x05,
	}

	for i, ref := range carrier_refs {
		table.c[i].carrier_ref = ref
	}

	for i := 0; i < CCARD_MAX_MTR1; i++ {
		table.c[i].vfy_flags &^= CARD_VF_ACCS_ROUTING
	}
}
