package mmanager

/* Table IDs for the tables this toolkit works with. */

const (
	DLOG_MT_CARD_TABLE        = 22  /* 0x16 - Card table, MTR 1.x */
	DLOG_MT_CARD_TABLE_EXP    = 134 /* 0x86 - Expanded card table, MTR 2.x */
	DLOG_MT_CARRIER_TABLE_EXP = 135 /* 0x87 - Expanded carrier table */
	DLOG_MT_LCD_TABLE_1       = 136 /* 0x88 - Local call determination */
	DLOG_MT_LCD_TABLE_2       = 137 /* 0x89 */
	DLOG_MT_LCD_TABLE_3       = 138 /* 0x8a */
)

func table_to_string(table_id uint8) string {
	switch table_id {
	case DLOG_MT_CARD_TABLE:
		return "Card Table (MTR 1.x)"
	case DLOG_MT_CARD_TABLE_EXP:
		return "Expanded Card Table"
	case DLOG_MT_CARRIER_TABLE_EXP:
		return "Expanded Carrier Table"
	case DLOG_MT_LCD_TABLE_1, DLOG_MT_LCD_TABLE_2, DLOG_MT_LCD_TABLE_3:
		return "LCD Table"
	default:
		return "Unknown Table"
	}
}
