package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

func sampleExport() *Export {
	txns := []domain.Transaction{
		{
			ID:          "txn-0-ab",
			Date:        "2025-01-15",
			Amount:      400,
			Receiver:    "Airtime Recharge",
			Description: "Imported statement",
			Type:        domain.TypeDebit,
			Category:    domain.CategoryUtilities,
		},
	}
	summary := domain.SummaryStats{
		Income:       0,
		Expenses:     400,
		NetChange:    -400,
		FinalBalance: 9600,
		CategoryBreakdown: map[domain.Category]float64{
			domain.CategoryUtilities: 400,
		},
	}
	return NewExport(txns, summary)
}

func TestNewExport(t *testing.T) {
	export := sampleExport()
	if export.Count != 1 {
		t.Errorf("Count = %d, want 1", export.Count)
	}
	if export.GeneratedAt == "" {
		t.Error("GeneratedAt should be stamped")
	}

	empty := NewExport(nil, domain.SummaryStats{})
	if empty.Transactions == nil {
		t.Error("nil transactions should serialize as [], not null")
	}
}

func TestWriteExport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExport(sampleExport(), &buf); err != nil {
		t.Fatalf("WriteExport() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "  \"transactions\"") {
		t.Error("output should be indented with 2 spaces")
	}

	var decoded Export
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Transactions[0].Category != domain.CategoryUtilities {
		t.Errorf("round-trip category = %q", decoded.Transactions[0].Category)
	}
}

func TestWriteExport_Nil(t *testing.T) {
	if err := WriteExport(nil, &bytes.Buffer{}); err == nil {
		t.Error("expected error for nil export")
	}
}

func TestWriteExportToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	want := sampleExport()
	if err := WriteExportToFile(want, path); err != nil {
		t.Fatalf("WriteExportToFile() error = %v", err)
	}

	got, err := LoadExport(path)
	if err != nil {
		t.Fatalf("LoadExport() error = %v", err)
	}
	if got.Count != want.Count || len(got.Transactions) != len(want.Transactions) {
		t.Errorf("round-trip mismatch: got %d/%d txns", got.Count, len(got.Transactions))
	}
	if got.Summary.FinalBalance != want.Summary.FinalBalance {
		t.Errorf("FinalBalance = %v, want %v", got.Summary.FinalBalance, want.Summary.FinalBalance)
	}
}

func TestLoadExport_Missing(t *testing.T) {
	_, err := LoadExport(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil || !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestLoadExport_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExport(path); err == nil {
		t.Error("expected decode error for corrupt file")
	}
}
