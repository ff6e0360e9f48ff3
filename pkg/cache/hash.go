package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKey generates the cache key for a layout computation from its two
// serialized inputs. The key format is: layout:hash(spanSpec, tableSpec).
// Keys hash the raw argument strings, so inputs that differ only in JSON
// whitespace produce distinct keys; that costs a recomputation, never a
// wrong hit.
func LayoutKey(spanSpec, tableSpec string) string {
	data, _ := json.Marshal([2]string{spanSpec, tableSpec})
	hash := sha256.Sum256(data)
	return fmt.Sprintf("layout:%s", hex.EncodeToString(hash[:]))
}
