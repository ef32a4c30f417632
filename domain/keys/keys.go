package keys

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
)

const (
	// PfxBestListing is used for prefixing cross marketplace listing keys
	PfxBestListing = "bestListing"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}

// SetKey hashes a set of members so that the key does not depend on their
// order or repetition
func SetKey(members ...string) string {
	uniq := make(map[string]struct{}, len(members))
	sorted := make([]string, 0, len(members))
	for _, m := range members {
		if _, ok := uniq[m]; ok {
			continue
		}
		uniq[m] = struct{}{}
		sorted = append(sorted, m)
	}
	sort.Strings(sorted)
	return MD5(strings.Join(sorted, ","))
}

// GetPrefix extracts the first component of a key
func GetPrefix(key string) string {
	s := strings.SplitN(key, ":", 2)
	if len(s) > 1 {
		return s[0]
	}
	return ""
}
