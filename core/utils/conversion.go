package utils

import (
	"strconv"
	"strings"
)

// HashKey formats a definition hash the way the remote table keys it.
func HashKey(hash uint32) string {
	return strconv.FormatUint(uint64(hash), 10)
}

// ParseHash parses a table key back into a definition hash.
// Negative keys are accepted and reinterpreted as their unsigned 32-bit form,
// matching tables that serialise hashes as signed integers.
func ParseHash(key string) (uint32, bool) {
	key = strings.TrimSpace(key)
	if u, err := strconv.ParseUint(key, 10, 32); err == nil {
		return uint32(u), true
	}
	if i, err := strconv.ParseInt(key, 10, 32); err == nil {
		return uint32(int32(i)), true
	}
	return 0, false
}

// ToBool converts query and flag style strings to bool ("1", "true", "yes").
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
