// Package domain defines the transaction model and the closed category
// taxonomy shared by the ingestion pipeline and the presentation surface.
package domain

import (
	"fmt"
	"time"
)

// Category is the closed set of spending categories.
// Use ValidateCategory to ensure validity before use.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryTransfer      Category = "Transfer"
	CategorySalary        Category = "Salary"
	CategoryEntertainment Category = "Entertainment"
	CategoryFees          Category = "Fees"
	// CategoryInternal marks transfers between the user's own sub-wallets
	// (auto-save, savings sweep). Counted in the running balance, excluded
	// from income/expense reporting.
	CategoryInternal      Category = "Internal"
	CategoryUncategorized Category = "Uncategorized"
)

var validCategories = map[Category]struct{}{
	CategoryFood: {}, CategoryTransport: {}, CategoryUtilities: {},
	CategoryShopping: {}, CategoryTransfer: {}, CategorySalary: {},
	CategoryEntertainment: {}, CategoryFees: {}, CategoryInternal: {},
	CategoryUncategorized: {},
}

// ValidateCategory checks if category is valid
func ValidateCategory(c Category) bool {
	_, ok := validCategories[c]
	return ok
}

// CategoryColor pairs a category with its display color. Colors are static
// configuration handed to the presentation collaborator, not derived data.
type CategoryColor struct {
	Name  Category `json:"name"`
	Color string   `json:"color"`
}

// Categories lists every category with its display color, in display order.
var Categories = []CategoryColor{
	{CategoryFood, "#F97316"},
	{CategoryTransport, "#3B82F6"},
	{CategoryUtilities, "#A855F7"},
	{CategoryShopping, "#EC4899"},
	{CategoryTransfer, "#10B981"},
	{CategorySalary, "#14B8A6"},
	{CategoryEntertainment, "#F43F5E"},
	{CategoryFees, "#64748B"},
	{CategoryInternal, "#94A3B8"},
	{CategoryUncategorized, "#CBD5E1"},
}

// TransactionType distinguishes money out (debit) from money in (credit).
type TransactionType string

const (
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// ValidateTransactionType checks if the transaction type is valid
func ValidateTransactionType(t TransactionType) bool {
	return t == TypeDebit || t == TypeCredit
}

// RawTransaction is one qualifying statement row before categorization.
// Amount is always non-negative; direction is carried by Type.
type RawTransaction struct {
	Date        string          `json:"date"`
	Amount      float64         `json:"amount"`
	Receiver    string          `json:"receiver"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
}

// NewRawTransaction creates a validated raw transaction
func NewRawTransaction(date string, amount float64, receiver, description string, txnType TransactionType) (*RawTransaction, error) {
	if date == "" {
		return nil, fmt.Errorf("transaction date cannot be empty")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %f", amount)
	}
	if !ValidateTransactionType(txnType) {
		return nil, fmt.Errorf("invalid transaction type: %s", txnType)
	}

	return &RawTransaction{
		Date:        date,
		Amount:      amount,
		Receiver:    receiver,
		Description: description,
		Type:        txnType,
	}, nil
}

// Transaction is a categorized raw transaction with a batch-unique identity.
// The ID is assigned once at categorization time and never recomputed.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      float64         `json:"amount"`
	Receiver    string          `json:"receiver"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
}

// NewTransaction creates a validated transaction
func NewTransaction(id string, raw RawTransaction, category Category) (*Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("transaction ID cannot be empty")
	}
	if !ValidateCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !ValidateTransactionType(raw.Type) {
		return nil, fmt.Errorf("invalid transaction type: %s", raw.Type)
	}

	return &Transaction{
		ID:          id,
		Date:        raw.Date,
		Amount:      raw.Amount,
		Receiver:    raw.Receiver,
		Description: raw.Description,
		Type:        raw.Type,
		Category:    category,
	}, nil
}

// Recipient is one entry in the top-recipients ranking.
type Recipient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// SummaryStats holds the aggregate metrics derived from the transaction
// collection plus a user-supplied opening balance. Recomputed on every read,
// never persisted.
type SummaryStats struct {
	Income            float64              `json:"income"`
	Expenses          float64              `json:"expenses"`
	NetChange         float64              `json:"netChange"`
	FinalBalance      float64              `json:"finalBalance"`
	TopRecipients     []Recipient          `json:"topRecipients"`
	CategoryBreakdown map[Category]float64 `json:"categoryBreakdown"`
}

// FormatDate renders a calendar date in the repo-wide YYYY-MM-DD format.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
