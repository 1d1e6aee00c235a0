package questions

import "github.com/sheetwatch/sheetwatch-cli/sheets"

// HasStrikethrough reports whether the cell at (rowIndex, colIndex) of the
// named tab carries strikethrough formatting in any of its three sources:
// effective format, user-entered format, or a text format run.
//
// The formatting document is sparse at every level — the API omits rows,
// trailing cells, and formats that were never set — so every lookup is
// bounds- and nil-checked. A missing or partial document means "not struck
// through", never a failure.
func HasStrikethrough(doc *sheets.Spreadsheet, sheetName string, rowIndex, colIndex int) bool {
	cell := findCell(doc, sheetName, rowIndex, colIndex)
	if cell == nil {
		return false
	}

	if formatStruck(cell.EffectiveFormat) {
		return true
	}
	if formatStruck(cell.UserEnteredFormat) {
		return true
	}
	for _, run := range cell.TextFormatRuns {
		if run.Format != nil && run.Format.Strikethrough {
			return true
		}
	}
	return false
}

func findCell(doc *sheets.Spreadsheet, sheetName string, rowIndex, colIndex int) *sheets.CellData {
	if doc == nil || rowIndex < 0 || colIndex < 0 {
		return nil
	}
	for i := range doc.Sheets {
		sheet := &doc.Sheets[i]
		if sheet.Properties.Title != sheetName {
			continue
		}
		if len(sheet.Data) == 0 {
			return nil
		}
		rows := sheet.Data[0].RowData
		if rowIndex >= len(rows) {
			return nil
		}
		cells := rows[rowIndex].Values
		if colIndex >= len(cells) {
			return nil
		}
		return &cells[colIndex]
	}
	return nil
}

func formatStruck(f *sheets.CellFormat) bool {
	return f != nil && f.TextFormat != nil && f.TextFormat.Strikethrough
}
