package collect

import "strings"

// IsTextFile reports whether name ends with an allowed extension and with no
// denied one. Comparison is case-insensitive and works on the whole name, so
// multi-part suffixes such as ".d.ts" are allowed in either list.
func IsTextFile(name string, allow, deny []string) bool {
	lower := strings.ToLower(name)
	return hasAnySuffix(lower, allow) && !hasAnySuffix(lower, deny)
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
