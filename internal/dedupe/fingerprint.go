// Package dedupe provides the content fingerprint used for duplicate
// detection and idempotent re-ingestion.
package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the SHA-256 hex digest of subject+body. It is a pure
// function of its inputs: the same message fingerprints identically no
// matter how or when it was fetched.
func Fingerprint(subject, body string) string {
	sum := sha256.Sum256([]byte(subject + body))
	return hex.EncodeToString(sum[:])
}
