package score

// IsSubsequence reports whether every byte of needle occurs in haystack in
// order, allowing gaps between matched bytes. It is a necessary condition
// for a positive alignment score and serves as a cheap O(len(haystack))
// rejection test before the O(n*m) kernel.
func IsSubsequence(needle, haystack []byte) bool {
	if len(needle) == 0 {
		return true
	}
	i := 0
	for _, c := range haystack {
		if c == needle[i] {
			i++
			if i == len(needle) {
				return true
			}
		}
	}
	return false
}
