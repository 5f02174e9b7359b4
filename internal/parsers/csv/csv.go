// Package csv parses delimited text statement exports into a cell grid.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Whitekid123/finance-tracker/internal/grid"
	"github.com/Whitekid123/finance-tracker/internal/parser"
)

// Parser parses delimited text. Stateless, safe for concurrent use.
type Parser struct{}

var parserInstance = &Parser{}

// NewParser returns the shared CSV parser instance.
func NewParser() *Parser {
	return parserInstance
}

// Name returns the parser identifier
func (p *Parser) Name() string {
	return "csv"
}

// CanParse accepts .csv and .txt files whose header bytes look like text.
func (p *Parser) CanParse(path string, header []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".txt" {
		return false
	}

	// Reject binary content masquerading under a text extension.
	for _, b := range header {
		if b == 0 {
			return false
		}
	}
	return true
}

// Parse reads the delimited text into a grid. Every cell is a text cell;
// CSV carries no type information, so numeric-looking values stay text and
// the amount/date normalizers decide what they mean.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (grid.Grid, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV content: %w", err)
	}

	g := make(grid.Grid, 0, len(records))
	for _, record := range records {
		// Skip fully blank lines; they carry no layout information.
		if isBlank(record) {
			continue
		}

		row := make(grid.Row, len(record))
		for i, field := range record {
			if strings.TrimSpace(field) == "" {
				row[i] = grid.Empty()
			} else {
				row[i] = grid.Text(field)
			}
		}
		g = append(g, row)
	}

	return g, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

var _ parser.Parser = (*Parser)(nil)
