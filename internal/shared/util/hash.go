package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKey returns a filesystem-safe hex identifier for an arbitrary string.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ShardPrefix returns a short fan-out directory name for a storage key, so
// object listings stay manageable as the store grows.
func ShardPrefix(s string) string {
	return HashKey(s)[:2]
}
