package validate

import (
	"fmt"
	"time"

	"github.com/Whitekid123/finance-tracker/internal/dedup"
	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// ValidationResult contains all validation errors and warnings for a
// transaction collection.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError represents a validation error
type ValidationError struct {
	ID      string
	Field   string
	Value   string
	Message string
}

// ValidationWarning represents a non-critical validation issue
type ValidationWarning struct {
	ID      string
	Field   string
	Value   string
	Message string
}

// Valid reports whether the collection has no errors. Warnings do not
// affect validity.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateTransactions checks every transaction in a collection:
// non-empty unique IDs, parseable dates, non-negative amounts, known
// categories and types. Content-identical rows are reported as warnings
// since a statement can legitimately carry two equal payments on one day.
func ValidateTransactions(txns []domain.Transaction) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}

	seenIDs := make(map[string]bool)

	for _, txn := range txns {
		if txn.ID == "" {
			result.Errors = append(result.Errors, ValidationError{
				ID:      txn.ID,
				Field:   "ID",
				Value:   "",
				Message: "transaction ID cannot be empty",
			})
		}

		if txn.ID != "" {
			if seenIDs[txn.ID] {
				result.Errors = append(result.Errors, ValidationError{
					ID:      txn.ID,
					Field:   "ID",
					Value:   txn.ID,
					Message: "duplicate transaction ID",
				})
			}
			seenIDs[txn.ID] = true
		}

		if txn.Date == "" {
			result.Warnings = append(result.Warnings, ValidationWarning{
				ID:      txn.ID,
				Field:   "Date",
				Value:   "",
				Message: "transaction has no date",
			})
		} else if _, err := time.Parse("2006-01-02", txn.Date); err != nil {
			// Text dates pass through unparsed, so a statement with an
			// unusual format lands here rather than failing the import.
			result.Warnings = append(result.Warnings, ValidationWarning{
				ID:      txn.ID,
				Field:   "Date",
				Value:   txn.Date,
				Message: fmt.Sprintf("date is not in YYYY-MM-DD form: %v", err),
			})
		}

		if txn.Amount < 0 {
			result.Errors = append(result.Errors, ValidationError{
				ID:      txn.ID,
				Field:   "Amount",
				Value:   fmt.Sprintf("%f", txn.Amount),
				Message: "amount must be non-negative (direction is carried by Type)",
			})
		}

		if !domain.ValidateCategory(txn.Category) {
			result.Errors = append(result.Errors, ValidationError{
				ID:      txn.ID,
				Field:   "Category",
				Value:   string(txn.Category),
				Message: fmt.Sprintf("invalid category: %s", txn.Category),
			})
		}

		if !domain.ValidateTransactionType(txn.Type) {
			result.Errors = append(result.Errors, ValidationError{
				ID:      txn.ID,
				Field:   "Type",
				Value:   string(txn.Type),
				Message: fmt.Sprintf("invalid transaction type: %s (must be debit or credit)", txn.Type),
			})
		}
	}

	for _, dup := range dedup.FindDuplicates(txns) {
		result.Warnings = append(result.Warnings, ValidationWarning{
			ID:      dup.IDs[0],
			Field:   "Fingerprint",
			Value:   dup.Fingerprint,
			Message: fmt.Sprintf("%d transactions share identical date, amount, type, and receiver: %v", len(dup.IDs), dup.IDs),
		})
	}

	return result
}
