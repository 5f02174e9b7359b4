// Package registry selects the file format parser for a statement file.
package registry

import (
	"fmt"
	"io"
	"os"

	"github.com/Whitekid123/finance-tracker/internal/parser"
	"github.com/Whitekid123/finance-tracker/internal/parsers/csv"
	"github.com/Whitekid123/finance-tracker/internal/parsers/xlsx"
)

// headerSize is how many leading bytes parsers get for format sniffing.
// Enough for the ZIP magic number and a representative slice of CSV text.
const headerSize = 512

// Registry holds all registered parsers
type Registry struct {
	parsers []parser.Parser
}

// New creates a registry with all built-in parsers
func New() *Registry {
	return &Registry{
		parsers: []parser.Parser{
			xlsx.NewParser(),
			csv.NewParser(),
		},
	}
}

// Register adds a custom parser (for extensibility)
func (r *Registry) Register(p parser.Parser) {
	r.parsers = append(r.parsers, p)
}

// FindParser returns the parser for this file, chosen by extension and a
// look at the leading bytes.
func (r *Registry) FindParser(path string) (parser.Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	// EOF is OK - small statement files may be shorter than the header size.
	header = header[:n]

	return r.FindParserForHeader(path, header)
}

// FindParserForHeader selects a parser given an already-read header, for
// callers holding file content in memory (e.g. an HTTP upload).
func (r *Registry) FindParserForHeader(path string, header []byte) (parser.Parser, error) {
	for _, p := range r.parsers {
		if p.CanParse(path, header) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no parser found for file: %s", path)
}

// ListParsers returns all registered parser names
func (r *Registry) ListParsers() []string {
	names := make([]string, len(r.parsers))
	for i, p := range r.parsers {
		names[i] = p.Name()
	}
	return names
}
