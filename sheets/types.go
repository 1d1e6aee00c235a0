package sheets

// ErrorResponse is the standard Sheets API error shape
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ValueRange is the response from the values endpoint
type ValueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// Spreadsheet is the formatting document returned when grid data is requested.
// Every level is optional: the API omits empty rows, trailing cells, and any
// format that was never set.
type Spreadsheet struct {
	SpreadsheetID string  `json:"spreadsheetId"`
	Sheets        []Sheet `json:"sheets"`
}

// Sheet is one tab of a spreadsheet
type Sheet struct {
	Properties SheetProperties `json:"properties"`
	Data       []GridData      `json:"data"`
}

// SheetProperties identifies a tab
type SheetProperties struct {
	SheetID int64  `json:"sheetId"`
	Title   string `json:"title"`
}

// GridData is one contiguous block of cell data within a sheet
type GridData struct {
	StartRow    int       `json:"startRow"`
	StartColumn int       `json:"startColumn"`
	RowData     []RowData `json:"rowData"`
}

// RowData holds the cells of a single row
type RowData struct {
	Values []CellData `json:"values"`
}

// CellData carries a cell's value and its three possible format sources
type CellData struct {
	FormattedValue    string          `json:"formattedValue,omitempty"`
	EffectiveFormat   *CellFormat     `json:"effectiveFormat,omitempty"`
	UserEnteredFormat *CellFormat     `json:"userEnteredFormat,omitempty"`
	TextFormatRuns    []TextFormatRun `json:"textFormatRuns,omitempty"`
}

// CellFormat is the subset of cell formatting this tool inspects
type CellFormat struct {
	TextFormat *TextFormat `json:"textFormat,omitempty"`
}

// TextFormat is the text-level styling of a cell or run
type TextFormat struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// TextFormatRun styles a sub-range of a cell's text, starting at StartIndex
// and running to the next run (or the end of the text).
type TextFormatRun struct {
	StartIndex int         `json:"startIndex,omitempty"`
	Format     *TextFormat `json:"format,omitempty"`
}
