package helpers

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// RowHash calculates the import hash for a CSV record. The persistence
// layer uses it to recognize transactions that were already imported
// in an earlier batch.
func RowHash(record []string) string {
	return Sha256String(strings.Join(record, ","))
}

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}
