package loader

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComputeHash returns the hex SHA-256 of a file's raw bytes.
func ComputeHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
