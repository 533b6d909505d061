// Package sndbank stores sound alias hashing and the alias table loaders.
// Alias references inside binary assets only carry the hash; the text side
// works with names and the `@hash` fallback token.
package sndbank

import (
	"strconv"
	"strings"
)

// HashName hashes a sound alias name the way the engine does: djb2 over
// the lowercased name. The empty name hashes to 0, which stands for "no
// alias".
func HashName(name string) uint32 {
	if name == "" {
		return 0
	}
	hash := uint32(5381)
	for _, b := range []byte(strings.ToLower(name)) {
		hash = hash*33 + uint32(b)
	}
	return hash
}

// ResolveAliasToken turns either a human alias name or a literal "@hash"
// token into the alias hash.
func ResolveAliasToken(token string) (uint32, error) {
	if token == "" {
		return 0, nil
	}
	if strings.HasPrefix(token, "@") {
		hash, err := strconv.ParseUint(token[1:], 10, 32)
		if err != nil {
			return 0, err
		}
		return uint32(hash), nil
	}
	return HashName(token), nil
}

// AliasToken renders a hash back to text, preferring a known human name
// over the irreversible "@hash" form.
func AliasToken(hash uint32) string {
	if hash == 0 {
		return ""
	}
	if name, ok := KnownName(hash); ok {
		return name
	}
	return "@" + strconv.FormatUint(uint64(hash), 10)
}
