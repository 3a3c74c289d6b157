// Package fingerprint derives the stable dedup identifier for a scholarship.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 of title concatenated with source.
// No case or whitespace normalization is applied: two records differing only
// in whitespace produce different identifiers. Callers that want looser
// matching must normalize before calling.
func Sum(title, source string) string {
	h := sha256.Sum256([]byte(title + source))
	return hex.EncodeToString(h[:])
}
