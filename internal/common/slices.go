package common

// Sample returns at most n leading elements of s.
func Sample[S ~[]E, E any](s S, n int) S {
	if n < 0 || len(s) <= n {
		return s
	}

	return s[:n]
}

// Dedupe returns the elements of s that satisfy keep, dropping repeats and
// preserving first-seen order.
func Dedupe[E comparable](s []E, keep func(E) bool) []E {
	seen := make(map[E]struct{}, len(s))

	var out []E

	for _, e := range s {
		if _, dup := seen[e]; dup {
			continue
		}

		seen[e] = struct{}{}

		if keep == nil || keep(e) {
			out = append(out, e)
		}
	}

	return out
}
