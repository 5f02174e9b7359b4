// Package summary derives aggregate financial metrics from a categorized
// transaction collection.
package summary

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// maxRecipients caps the top-recipients ranking.
const maxRecipients = 5

// recipientPrefixes is the boilerplate stripped from transfer narrations
// before the counterparty name is extracted.
var recipientPrefixes = []string{"Transfer to ", "POS Transfer-"}

// Compute derives SummaryStats from the transaction collection plus a
// user-supplied opening balance. Derived on every call, never cached.
//
// Income and expenses exclude Internal transactions; the net change and
// final balance include them, because internal transfers still move money
// within the wallet even though they are not income or spending.
func Compute(txns []domain.Transaction, openingBalance float64) domain.SummaryStats {
	stats := domain.SummaryStats{
		TopRecipients:     []domain.Recipient{},
		CategoryBreakdown: make(map[domain.Category]float64),
	}

	var totalDebit, totalCredit float64
	for _, txn := range txns {
		if txn.Category != domain.CategoryInternal {
			if txn.Type == domain.TypeDebit {
				stats.Expenses += txn.Amount
			} else {
				stats.Income += txn.Amount
			}
		}

		if txn.Type == domain.TypeDebit {
			totalDebit += txn.Amount
			stats.CategoryBreakdown[txn.Category] += txn.Amount
		} else {
			totalCredit += txn.Amount
		}
	}

	stats.NetChange = totalCredit - totalDebit
	stats.FinalBalance = openingBalance + stats.NetChange
	stats.TopRecipients = topRecipients(txns)

	return stats
}

// topRecipients ranks the counterparties of outgoing Transfer transactions
// by total amount, descending, truncated to maxRecipients. Ties keep
// encounter order (stable sort).
func topRecipients(txns []domain.Transaction) []domain.Recipient {
	totals := make(map[string]float64)
	display := make(map[string]string)
	var order []string

	for _, txn := range txns {
		if txn.Type != domain.TypeDebit || txn.Category != domain.CategoryTransfer {
			continue
		}

		name := RecipientName(txn.Receiver)
		if name == "" {
			continue
		}

		// Accented spellings of one name share a bucket, but the ranking
		// displays the spelling that was seen first.
		key := foldMarks(name)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
			display[key] = name
		}
		totals[key] += txn.Amount
	}

	recipients := make([]domain.Recipient, 0, len(order))
	for _, key := range order {
		recipients = append(recipients, domain.Recipient{Name: display[key], Amount: totals[key]})
	}

	sort.SliceStable(recipients, func(i, j int) bool {
		return recipients[i].Amount > recipients[j].Amount
	})

	if len(recipients) > maxRecipients {
		recipients = recipients[:maxRecipients]
	}
	return recipients
}

// RecipientName extracts a counterparty name from a transfer narration:
// known boilerplate prefixes are stripped case-insensitively, the text is
// cut at the first "|" and whitespace trimmed. Returns "" when nothing
// remains. The spelling is preserved; accent folding happens only when
// names are bucketed for the ranking.
func RecipientName(receiver string) string {
	name := receiver
	for _, prefix := range recipientPrefixes {
		name = stripPrefixFold(name, prefix)
	}

	if i := strings.Index(name, "|"); i >= 0 {
		name = name[:i]
	}

	return strings.TrimSpace(name)
}

// stripPrefixFold removes prefix from s case-insensitively, anywhere it
// occurs (the narration may carry leading reference tokens).
func stripPrefixFold(s, prefix string) string {
	lower := strings.ToLower(s)
	lowerPrefix := strings.ToLower(prefix)
	if i := strings.Index(lower, lowerPrefix); i >= 0 {
		return s[:i] + s[i+len(prefix):]
	}
	return s
}

// foldMarks strips combining marks so accented spellings of the same name
// accumulate into one bucket.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
