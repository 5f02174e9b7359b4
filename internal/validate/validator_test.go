package validate

import (
	"strings"
	"testing"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

func validTxn(id string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        "2025-01-15",
		Amount:      250,
		Receiver:    "Airtime Recharge",
		Description: "Imported statement",
		Type:        domain.TypeDebit,
		Category:    domain.CategoryUtilities,
	}
}

func TestValidateTransactions_Valid(t *testing.T) {
	txns := []domain.Transaction{validTxn("txn-0-ab"), validTxn("txn-1-ab")}
	txns[1].Receiver = "Transfer to John"
	txns[1].Category = domain.CategoryTransfer

	result := ValidateTransactions(txns)
	if !result.Valid() {
		t.Fatalf("expected valid collection, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestValidateTransactions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		field   string
		message string
	}{
		{
			name:    "empty ID",
			mutate:  func(txn *domain.Transaction) { txn.ID = "" },
			field:   "ID",
			message: "cannot be empty",
		},
		{
			name:    "negative amount",
			mutate:  func(txn *domain.Transaction) { txn.Amount = -10 },
			field:   "Amount",
			message: "non-negative",
		},
		{
			name:    "invalid category",
			mutate:  func(txn *domain.Transaction) { txn.Category = "Groceries" },
			field:   "Category",
			message: "invalid category",
		},
		{
			name:    "invalid type",
			mutate:  func(txn *domain.Transaction) { txn.Type = "refund" },
			field:   "Type",
			message: "invalid transaction type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTxn("txn-0-ab")
			tt.mutate(&txn)

			result := ValidateTransactions([]domain.Transaction{txn})
			if result.Valid() {
				t.Fatal("expected validation errors")
			}

			found := false
			for _, e := range result.Errors {
				if e.Field == tt.field && strings.Contains(e.Message, tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s containing %q, got %v", tt.field, tt.message, result.Errors)
			}
		})
	}
}

func TestValidateTransactions_DuplicateID(t *testing.T) {
	txns := []domain.Transaction{validTxn("txn-0-ab"), validTxn("txn-0-ab")}
	txns[1].Amount = 999

	result := ValidateTransactions(txns)
	if result.Valid() {
		t.Fatal("expected duplicate ID error")
	}
	if result.Errors[0].Field != "ID" {
		t.Errorf("expected ID error, got %v", result.Errors[0])
	}
}

func TestValidateTransactions_DateWarnings(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "empty date", date: ""},
		{name: "unparsed text date", date: "Jan 15, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTxn("txn-0-ab")
			txn.Date = tt.date

			result := ValidateTransactions([]domain.Transaction{txn})
			if !result.Valid() {
				t.Fatalf("date issues must be warnings, got errors: %v", result.Errors)
			}
			if len(result.Warnings) != 1 || result.Warnings[0].Field != "Date" {
				t.Errorf("expected one Date warning, got %v", result.Warnings)
			}
		})
	}
}

func TestValidateTransactions_ContentDuplicateWarning(t *testing.T) {
	txns := []domain.Transaction{validTxn("txn-0-ab"), validTxn("txn-1-ab")}

	result := ValidateTransactions(txns)
	if !result.Valid() {
		t.Fatalf("content duplicates must not be errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Field != "Fingerprint" {
		t.Fatalf("expected one Fingerprint warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0].Message, "txn-1-ab") {
		t.Errorf("warning should list colliding IDs, got %q", result.Warnings[0].Message)
	}
}

func TestValidateTransactions_Empty(t *testing.T) {
	result := ValidateTransactions(nil)
	if !result.Valid() {
		t.Errorf("empty collection should be valid, got %v", result.Errors)
	}
}
