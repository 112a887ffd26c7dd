package interval

// SatAdd returns a+b clamped to [Min, Max].
// Complexity: O(1).
func SatAdd(a, b int64) int64 {
	s := a + b
	if b > 0 && s < a {
		return Max
	}
	if b < 0 && s > a {
		return Min
	}

	return s
}

// SatSub returns a-b clamped to [Min, Max].
// Complexity: O(1).
func SatSub(a, b int64) int64 {
	d := a - b
	if b < 0 && d < a {
		return Max
	}
	if b > 0 && d > a {
		return Min
	}

	return d
}
