// Package pipeline orchestrates one statement import: parse the file into a
// grid, detect its layout, extract rows, categorize them, and install the
// result in the store.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Whitekid123/finance-tracker/internal/domain"
	"github.com/Whitekid123/finance-tracker/internal/extract"
	"github.com/Whitekid123/finance-tracker/internal/layout"
	"github.com/Whitekid123/finance-tracker/internal/parser"
	"github.com/Whitekid123/finance-tracker/internal/registry"
	"github.com/Whitekid123/finance-tracker/internal/rules"
	"github.com/Whitekid123/finance-tracker/internal/store"
	"github.com/Whitekid123/finance-tracker/internal/transform"
)

// Result reports what one import did.
type Result struct {
	FileName     string
	ParserName   string
	Transactions []domain.Transaction
	// Trace is the layout-detection diagnostic, human-readable. When
	// detection fails the trace is the only output: the import yields zero
	// transactions but no error.
	Trace []string
	// RulesMatched / RulesUnmatched count categorization coverage.
	RulesMatched   int
	RulesUnmatched int

	unmatchedExamples []string
}

// UnmatchedExamples returns example narrations no rule matched.
func (r *Result) UnmatchedExamples() []string {
	return append([]string(nil), r.unmatchedExamples...)
}

// Coverage returns the matched fraction in percent; 100 when nothing was
// categorized.
func (r *Result) Coverage() float64 {
	total := r.RulesMatched + r.RulesUnmatched
	if total == 0 {
		return 100
	}
	return float64(r.RulesMatched) / float64(total) * 100
}

// Pipeline wires the registry, rules engine and store together. One import
// runs to completion before the collection is replaced; concurrent imports
// are not coordinated here and must be serialized by the caller.
type Pipeline struct {
	registry *registry.Registry
	engine   *rules.Engine
	store    *store.Store
}

// New creates an import pipeline.
func New(reg *registry.Registry, engine *rules.Engine, st *store.Store) (*Pipeline, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("rules engine cannot be nil")
	}
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	return &Pipeline{registry: reg, engine: engine, store: st}, nil
}

// ImportFile imports the statement at path, replacing the store's
// collection on success.
//
// Error philosophy: only an unreadable file is an error, and it leaves the
// store unchanged. A readable file with an unrecognized layout degrades to
// an empty result whose Trace explains what was attempted.
func (p *Pipeline) ImportFile(ctx context.Context, path string) (*Result, error) {
	sel, err := p.registry.FindParser(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return p.run(ctx, filepath.Base(path), sel, f)
}

// ImportUpload imports statement content already in memory (e.g. an HTTP
// upload), selecting the parser from the name and leading bytes.
func (p *Pipeline) ImportUpload(ctx context.Context, name string, content []byte) (*Result, error) {
	header := content
	if len(header) > 512 {
		header = header[:512]
	}

	sel, err := p.registry.FindParserForHeader(name, header)
	if err != nil {
		return nil, err
	}

	return p.run(ctx, name, sel, bytes.NewReader(content))
}

// run executes parse → detect → extract → categorize → replace.
func (p *Pipeline) run(ctx context.Context, name string, sel parser.Parser, r io.Reader) (*Result, error) {
	result := &Result{FileName: name, ParserName: sel.Name()}

	g, err := sel.Parse(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", name, err)
	}

	det := layout.Detect(g)
	result.Trace = det.Trace
	if !det.Ok() {
		// Unrecognized layout: zero transactions plus the trace, by contract
		// not an error. The store is left alone.
		return result, nil
	}

	raw := extract.Extract(g, det.Descriptor)

	txns, stats, err := transform.Categorize(raw, p.engine)
	if err != nil {
		return nil, fmt.Errorf("categorization failed for %s: %w", name, err)
	}
	result.Transactions = txns
	result.RulesMatched = stats.Matched
	result.RulesUnmatched = stats.Unmatched
	result.unmatchedExamples = stats.UnmatchedExamples()

	if err := p.store.Replace(ctx, txns); err != nil {
		return nil, err
	}

	return result, nil
}
