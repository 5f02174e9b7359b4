// Package extract applies a detected layout to a cell grid, producing raw
// transactions from the qualifying rows.
package extract

import (
	"github.com/Whitekid123/finance-tracker/internal/domain"
	"github.com/Whitekid123/finance-tracker/internal/grid"
	"github.com/Whitekid123/finance-tracker/internal/layout"
)

// DefaultDescription tags imported rows; statement rows carry their
// narration in the receiver field.
const DefaultDescription = "Imported statement"

// UnknownReceiver stands in when the narration column is absent or empty.
const UnknownReceiver = "Unknown"

// Extract walks every data row of the grid and produces zero or one raw
// transaction per row, in row order. Rows with no monetary movement
// (balance-only or malformed) are discarded silently. Pure function of its
// inputs: re-running on the same grid and descriptor yields an identical
// sequence.
func Extract(g grid.Grid, d layout.Descriptor) []domain.RawTransaction {
	if !d.Usable() {
		return nil
	}

	start := d.HeaderRow + 1 // HeaderNone is -1, so headless starts at row 0
	txns := make([]domain.RawTransaction, 0, len(g))

	for r := start; r < len(g); r++ {
		if len(g[r]) == 0 {
			continue
		}
		if txn, ok := extractRow(g, d, r); ok {
			txns = append(txns, txn)
		}
	}

	return txns
}

// extractRow converts a single grid row, reporting ok=false for rows that
// carry no movement.
func extractRow(g grid.Grid, d layout.Descriptor, r int) (domain.RawTransaction, bool) {
	debit := grid.ParseAmount(g.Cell(r, d.DebitCol))
	credit := grid.ParseAmount(g.Cell(r, d.CreditCol))

	if debit == 0 && credit == 0 {
		return domain.RawTransaction{}, false
	}

	// Debit takes priority when a row carries both; pinned by test, see
	// TestExtract_DebitPriorityOnBothNonZero.
	isExpense := debit > 0

	amount := credit
	txnType := domain.TypeCredit
	if isExpense {
		amount = debit
		txnType = domain.TypeDebit
	}

	receiver := UnknownReceiver
	if cell := g.Cell(r, d.NarrationCol); !cell.IsEmpty() {
		receiver = cell.String()
	}

	return domain.RawTransaction{
		Date:        grid.NormalizeDate(g.Cell(r, d.DateCol)),
		Amount:      amount,
		Receiver:    receiver,
		Description: DefaultDescription,
		Type:        txnType,
	}, true
}
