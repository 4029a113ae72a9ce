package random

// Weighted draws one item with probability proportional to its weight using
// a single value from u. Weights must be non-negative and match items in
// length. When rounding leaves the running remainder above zero after the
// final subtraction, the last item is returned.
func Weighted[T any](u Uniform, items []T, weights []float64) T {
	if len(items) == 0 || len(items) != len(weights) {
		panic("random: Weighted needs one weight per item")
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := float64(u.Float64() * total)
	for i, item := range items {
		r -= weights[i]
		if r <= 0 {
			return item
		}
	}
	return items[len(items)-1]
}
