// Package xlsx parses spreadsheet statement exports into a cell grid.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Whitekid123/finance-tracker/internal/grid"
	"github.com/Whitekid123/finance-tracker/internal/parser"
)

// xlsxMagic is the ZIP local-file-header signature every .xlsx starts with.
var xlsxMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Parser implements spreadsheet parsing. Stateless, safe for concurrent use.
type Parser struct{}

var parserInstance = &Parser{}

// NewParser returns the shared spreadsheet parser instance.
func NewParser() *Parser {
	return parserInstance
}

// Name returns the parser identifier
func (p *Parser) Name() string {
	return "xlsx"
}

// CanParse accepts .xlsx files carrying the ZIP magic number.
func (p *Parser) CanParse(path string, header []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" {
		return false
	}
	return bytes.HasPrefix(header, xlsxMagic)
}

// Parse reads the first sheet of the workbook into a grid. Raw cell values
// are used so spreadsheet date serials arrive as numbers instead of
// locale-formatted strings; cells whose raw value parses as a number become
// numeric cells, everything else stays text.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (grid.Grid, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet contains no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	g := make(grid.Grid, 0, len(rows))
	for _, record := range rows {
		row := make(grid.Row, len(record))
		for i, field := range record {
			row[i] = toCell(field)
		}
		g = append(g, row)
	}

	return g, nil
}

// toCell classifies one raw spreadsheet value.
func toCell(raw string) grid.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return grid.Empty()
	}
	// "-" and "--" are empty-amount sentinels, not numbers.
	if trimmed == "-" || trimmed == "--" {
		return grid.Text(trimmed)
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return grid.Numeric(v)
	}
	return grid.Text(raw)
}

var _ parser.Parser = (*Parser)(nil)
