// Package transform converts raw extracted transactions into categorized
// domain transactions with batch-unique identities.
package transform

import (
	"fmt"
	"strings"

	"github.com/Whitekid123/finance-tracker/internal/domain"
	"github.com/Whitekid123/finance-tracker/internal/rules"
)

// Stats counts rule matching outcomes across one batch.
type Stats struct {
	Matched   int
	Unmatched int

	unmatchedExamples []string
}

// UnmatchedExamples returns up to five distinct narrations that no rule
// matched, for operator feedback on rule coverage.
func (s *Stats) UnmatchedExamples() []string {
	return append([]string(nil), s.unmatchedExamples...)
}

const maxUnmatchedExamples = 5

func (s *Stats) recordUnmatched(text string) {
	s.Unmatched++
	if len(s.unmatchedExamples) >= maxUnmatchedExamples {
		return
	}
	for _, seen := range s.unmatchedExamples {
		if seen == text {
			return
		}
	}
	s.unmatchedExamples = append(s.unmatchedExamples, text)
}

// Categorize assigns every raw transaction a category and its final
// identity, preserving input order.
//
// The scanned text is the lower-cased concatenation of receiver and
// description; a receiver that is empty falls back to the description, then
// to "Unknown". No rule match yields Uncategorized, never an error.
func Categorize(raw []domain.RawTransaction, engine *rules.Engine) ([]domain.Transaction, *Stats, error) {
	if engine == nil {
		return nil, nil, fmt.Errorf("rules engine cannot be nil")
	}

	gen := NewIDGenerator()
	stats := &Stats{}
	txns := make([]domain.Transaction, 0, len(raw))

	for i, r := range raw {
		receiver := r.Receiver
		if receiver == "" {
			receiver = r.Description
		}
		if receiver == "" {
			receiver = "Unknown"
		}

		scanText := strings.ToLower(receiver + " " + r.Description)
		category, matched := engine.Match(scanText)
		if matched {
			stats.Matched++
		} else {
			stats.recordUnmatched(receiver)
		}

		r.Receiver = receiver
		txn, err := domain.NewTransaction(gen.ID(i), r, category)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build transaction %d: %w", i, err)
		}
		txns = append(txns, *txn)
	}

	return txns, stats, nil
}
