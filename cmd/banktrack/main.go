package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Whitekid123/finance-tracker/internal/domain"
	"github.com/Whitekid123/finance-tracker/internal/output"
	"github.com/Whitekid123/finance-tracker/internal/pipeline"
	"github.com/Whitekid123/finance-tracker/internal/registry"
	"github.com/Whitekid123/finance-tracker/internal/rules"
	"github.com/Whitekid123/finance-tracker/internal/server"
	"github.com/Whitekid123/finance-tracker/internal/store"
	"github.com/Whitekid123/finance-tracker/internal/summary"
	"github.com/Whitekid123/finance-tracker/internal/ui"
	"github.com/Whitekid123/finance-tracker/internal/validate"
)

const (
	version = "0.1.0"
)

var (
	// Global flags
	versionFlag = flag.Bool("version", false, "Show version")

	// Core CLI flags
	inputFile = flag.String("input", "", "Statement file to import (.csv or .xlsx)")
	opening   = flag.Float64("opening", 0, "Opening balance for the summary")
	dbPath    = flag.String("db", "banktrack.db", "SQLite database file")
	rulesFile = flag.String("rules", "", "Category rules file (default: embedded rules)")
	verbose   = flag.Bool("verbose", false, "Show detailed import logs")

	// Output flags
	exportFile = flag.String("export", "", "Write transactions and summary as JSON to this file")

	// Server flags
	serve = flag.Bool("serve", false, "Run the JSON API server instead of importing")
	addr  = flag.String("addr", ":8080", "Listen address for -serve")

	// Maintenance flags
	clearFlag = flag.Bool("clear", false, "Clear all stored transactions and exit")
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `banktrack - Personal bank statement tracker

Usage:
  banktrack [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Examples:
  # Import a statement and print the summary
  banktrack -input statement.xlsx -opening 25000

  # Import with custom category rules
  banktrack -input statement.csv -rules rules.yaml

  # Export the stored transactions as JSON
  banktrack -export budget.json

  # Serve the JSON API for the web UI
  banktrack -serve -addr :8080

`)
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		fmt.Printf("banktrack version %s\n", version)
		os.Exit(0)
	}

	if *inputFile == "" && !*serve && !*clearFlag && *exportFile == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -input, -serve, -export, or -clear is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	kv, err := store.OpenSQLite(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", *dbPath, err)
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
		}
	}()

	st, err := store.New(ctx, kv)
	if err != nil {
		return fmt.Errorf("failed to load stored transactions: %w", err)
	}

	if *clearFlag {
		if err := st.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		ui.Success("Cleared all stored transactions")
		return nil
	}

	engine, err := loadRules()
	if err != nil {
		return err
	}

	reg := registry.New()
	if *verbose {
		fmt.Fprintf(os.Stderr, "Registered parsers: %v\n", reg.ListParsers())
	}

	pipe, err := pipeline.New(reg, engine, st)
	if err != nil {
		return err
	}

	if *serve {
		return serveAPI(st, pipe)
	}

	if *inputFile != "" {
		if err := importStatement(ctx, pipe, st); err != nil {
			return err
		}
	}

	if *exportFile != "" {
		stats := summary.Compute(st.Get(), *opening)
		export := output.NewExport(st.Get(), stats)
		if err := output.WriteExportToFile(export, *exportFile); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Wrote %d transactions to %s", export.Count, *exportFile))
	}

	return nil
}

func loadRules() (*rules.Engine, error) {
	if *rulesFile != "" {
		engine, err := rules.LoadFromFile(*rulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file: %w", err)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d custom rules from %s\n", len(engine.GetRules()), *rulesFile)
		}
		return engine, nil
	}

	engine, err := rules.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded rules: %w", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d embedded rules\n", len(engine.GetRules()))
	}
	return engine, nil
}

func importStatement(ctx context.Context, pipe *pipeline.Pipeline, st *store.Store) error {
	if !*verbose {
		ui.Header("Importing Bank Statement")
		ui.Step(1, 3, "Parsing statement")
	} else {
		fmt.Fprintf(os.Stderr, "Importing %s\n", *inputFile)
	}

	start := time.Now()
	result, err := pipe.ImportFile(ctx, *inputFile)
	if err != nil {
		return err
	}

	if len(result.Transactions) == 0 {
		ui.Warning("No transactions found, layout was not recognized")
		for _, line := range result.Trace {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
		return nil
	}

	if !*verbose {
		ui.Step(2, 3, "Categorizing transactions")
	}
	ui.Success(fmt.Sprintf("Imported %d transactions with %s parser in %s",
		len(result.Transactions), result.ParserName, time.Since(start).Round(time.Millisecond)))
	ui.Info(fmt.Sprintf("Rule coverage: %d matched, %d unmatched (%.0f%%)",
		result.RulesMatched, result.RulesUnmatched, result.Coverage()))

	if *verbose {
		for _, example := range result.UnmatchedExamples() {
			fmt.Fprintf(os.Stderr, "  unmatched: %s\n", example)
		}
	}

	check := validate.ValidateTransactions(result.Transactions)
	for _, warning := range check.Warnings {
		ui.Warning(fmt.Sprintf("%s %s: %s", warning.ID, warning.Field, warning.Message))
	}
	if !check.Valid() {
		for _, e := range check.Errors {
			ui.Error(fmt.Sprintf("%s %s: %s", e.ID, e.Field, e.Message))
		}
		return fmt.Errorf("imported transactions failed validation with %d errors", len(check.Errors))
	}

	if !*verbose {
		ui.Step(3, 3, "Computing summary")
	}
	printSummary(st)
	return nil
}

func printSummary(st *store.Store) {
	stats := summary.Compute(st.Get(), *opening)

	ui.Header("Summary")
	ui.BlueText(fmt.Sprintf("Income:        %12.2f", stats.Income))
	ui.YellowText(fmt.Sprintf("Expenses:      %12.2f", stats.Expenses))
	fmt.Fprintf(os.Stderr, "Net change:    %12.2f\n", stats.NetChange)
	fmt.Fprintf(os.Stderr, "Final balance: %12.2f\n", stats.FinalBalance)

	if len(stats.CategoryBreakdown) > 0 {
		fmt.Fprintln(os.Stderr, "\nSpending by category:")
		for _, cat := range domain.Categories {
			if amount, ok := stats.CategoryBreakdown[cat.Name]; ok {
				fmt.Fprintf(os.Stderr, "  %-15s %12.2f\n", cat.Name, amount)
			}
		}
	}

	if len(stats.TopRecipients) > 0 {
		fmt.Fprintln(os.Stderr, "\nTop transfer recipients:")
		for _, r := range stats.TopRecipients {
			fmt.Fprintf(os.Stderr, "  %-25s %12.2f\n", r.Name, r.Amount)
		}
	}
}

func serveAPI(st *store.Store, pipe *pipeline.Pipeline) error {
	srv, err := server.New(st, pipe)
	if err != nil {
		return err
	}

	ui.Header("Bank Statement API")
	ui.Info(fmt.Sprintf("Listening on %s", *addr))
	return http.ListenAndServe(*addr, srv.Handler())
}
