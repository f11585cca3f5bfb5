package bank

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// fingerprintEntry is the canonical per-role encoding used for hashing.
type fingerprintEntry struct {
	Role      string     `json:"role"`
	Questions []Question `json:"questions"`
}

// Fingerprint computes a stable content hash of a bank. Roles are encoded
// in sorted order so the hash depends only on semantic content, not map
// iteration order. Any change to a question's text, options, or answer
// changes the fingerprint.
func Fingerprint(roles map[string][]Question) string {
	names := make([]string, 0, len(roles))
	for role := range roles {
		names = append(names, role)
	}
	sort.Strings(names)

	entries := make([]fingerprintEntry, 0, len(names))
	for _, role := range names {
		entries = append(entries, fingerprintEntry{Role: role, Questions: roles[role]})
	}

	// Marshal cannot fail for these types.
	canonical, _ := json.Marshal(entries)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
