// Package parser defines the strategy interface the file-format parsers
// implement. Parsers turn statement file bytes into an untyped cell grid;
// nothing downstream of them ever touches the file again.
package parser

import (
	"context"
	"io"

	"github.com/Whitekid123/finance-tracker/internal/grid"
)

// Parser is the strategy interface for all file format parsers
type Parser interface {
	// Name returns parser identifier (e.g., "csv", "xlsx")
	Name() string

	// CanParse checks if parser can handle this file.
	// header holds the first bytes of the file for format sniffing.
	CanParse(path string, header []byte) bool

	// Parse extracts the raw cell grid from the file
	Parse(ctx context.Context, r io.Reader) (grid.Grid, error)
}
