package dedup

import (
	"testing"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

func txn(id, date string, amount float64, receiver string, typ domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:       id,
		Date:     date,
		Amount:   amount,
		Receiver: receiver,
		Type:     typ,
		Category: domain.CategoryUncategorized,
	}
}

func TestFingerprint_Normalization(t *testing.T) {
	base := txn("txn-1-aa", "2025-01-15", 50, "Whole Foods", domain.TypeDebit)

	tests := []struct {
		name string
		t    domain.Transaction
		same bool
	}{
		{name: "identical content different ID", t: txn("txn-2-bb", "2025-01-15", 50, "Whole Foods", domain.TypeDebit), same: true},
		{name: "receiver case insensitive", t: txn("txn-2-bb", "2025-01-15", 50, "WHOLE FOODS", domain.TypeDebit), same: true},
		{name: "receiver whitespace trimmed", t: txn("txn-2-bb", "2025-01-15", 50, "  Whole Foods  ", domain.TypeDebit), same: true},
		{name: "different date", t: txn("txn-2-bb", "2025-01-16", 50, "Whole Foods", domain.TypeDebit), same: false},
		{name: "different amount", t: txn("txn-2-bb", "2025-01-15", 50.01, "Whole Foods", domain.TypeDebit), same: false},
		{name: "different type", t: txn("txn-2-bb", "2025-01-15", 50, "Whole Foods", domain.TypeCredit), same: false},
	}

	want := Fingerprint(base)
	if len(want) != 64 {
		t.Fatalf("fingerprint should be 64 hex chars, got %d", len(want))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.t)
			if (got == want) != tt.same {
				t.Errorf("Fingerprint() collision = %v, want %v", got == want, tt.same)
			}
		})
	}
}

func TestFingerprint_AmountRounding(t *testing.T) {
	a := Fingerprint(txn("txn-1-aa", "2025-01-15", 123.456, "Test", domain.TypeDebit))
	b := Fingerprint(txn("txn-2-bb", "2025-01-15", 123.4561, "Test", domain.TypeDebit))
	if a != b {
		t.Error("amounts equal at 2 decimal places should produce the same fingerprint")
	}
}

func TestFindDuplicates(t *testing.T) {
	txns := []domain.Transaction{
		txn("txn-0-aa", "2025-01-01", 100, "Transfer to John", domain.TypeDebit),
		txn("txn-1-aa", "2025-01-02", 250, "Airtime", domain.TypeDebit),
		txn("txn-2-aa", "2025-01-01", 100, "Transfer to John", domain.TypeDebit),
		txn("txn-3-aa", "2025-01-01", 100, "transfer to john", domain.TypeDebit),
	}

	dups := FindDuplicates(txns)
	if len(dups) != 1 {
		t.Fatalf("expected 1 duplicate group, got %d", len(dups))
	}
	if got := dups[0].IDs; len(got) != 3 || got[0] != "txn-0-aa" || got[1] != "txn-2-aa" || got[2] != "txn-3-aa" {
		t.Errorf("unexpected duplicate IDs: %v", got)
	}
}

func TestFindDuplicates_NoDuplicates(t *testing.T) {
	txns := []domain.Transaction{
		txn("txn-0-aa", "2025-01-01", 100, "A", domain.TypeDebit),
		txn("txn-1-aa", "2025-01-02", 100, "A", domain.TypeDebit),
	}
	if dups := FindDuplicates(txns); dups != nil {
		t.Errorf("expected no duplicates, got %v", dups)
	}
}

func TestFindDuplicates_Empty(t *testing.T) {
	if dups := FindDuplicates(nil); dups != nil {
		t.Errorf("expected nil for empty input, got %v", dups)
	}
}
