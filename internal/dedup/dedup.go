// Package dedup fingerprints transactions so repeated statement rows can be
// flagged during validation.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// Fingerprint creates a SHA256 hash identifying a transaction by content.
// Format: SHA256("{date}|{amount}|{type}|{normalizedReceiver}")
// Amount is formatted with 2 decimal places for consistency.
// Receiver is normalized: lowercase and trimmed.
func Fingerprint(t domain.Transaction) string {
	receiver := strings.ToLower(strings.TrimSpace(t.Receiver))
	input := fmt.Sprintf("%s|%.2f|%s|%s", t.Date, t.Amount, t.Type, receiver)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])
}

// Duplicate groups transactions that share a fingerprint.
type Duplicate struct {
	Fingerprint string
	// IDs of all transactions carrying the fingerprint, in input order.
	IDs []string
}

// FindDuplicates returns one entry per fingerprint seen more than once.
// Transactions with identical date, amount, type, and receiver collide even
// when their IDs differ, which is exactly the case a re-imported row produces.
func FindDuplicates(txns []domain.Transaction) []Duplicate {
	seen := make(map[string][]string)
	order := make([]string, 0)

	for _, t := range txns {
		fp := Fingerprint(t)
		if _, ok := seen[fp]; !ok {
			order = append(order, fp)
		}
		seen[fp] = append(seen[fp], t.ID)
	}

	var dups []Duplicate
	for _, fp := range order {
		if ids := seen[fp]; len(ids) > 1 {
			dups = append(dups, Duplicate{Fingerprint: fp, IDs: ids})
		}
	}
	return dups
}
