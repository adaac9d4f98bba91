package common

import "strings"

// HasPrefixAny returns true if s starts with any of the prefixes.
func HasPrefixAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// IsRemote reports whether location points at an HTTP(S) resource.
func IsRemote(location string) bool {
	return HasPrefixAny(strings.ToLower(location), "http://", "https://")
}
