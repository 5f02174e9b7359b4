package transform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator assigns batch-unique transaction IDs.
//
// Each import batch carries one random salt; within the batch, identity is
// the ordinal position. IDs are assigned once at categorization time and
// never recomputed, so re-importing the same file produces a fresh set of
// identities rather than colliding with the previous batch.
type IDGenerator struct {
	salt string
}

// NewIDGenerator creates a generator with a fresh random batch salt.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{salt: newSalt()}
}

// newIDGeneratorWithSalt exists for deterministic tests.
func newIDGeneratorWithSalt(salt string) *IDGenerator {
	return &IDGenerator{salt: salt}
}

// ID returns the identity for the transaction at the given ordinal.
// Format: "txn-{ordinal}-{salt}".
func (g *IDGenerator) ID(ordinal int) string {
	return fmt.Sprintf("txn-%d-%s", ordinal, g.salt)
}

// newSalt derives a short batch salt from a random UUID. Eight hex
// characters is enough to separate batches; uniqueness within a batch comes
// from the ordinal.
func newSalt() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
