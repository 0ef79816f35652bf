package vision

// slope is an exact fraction. Slopes must stay exact across many row
// splits; a floating-point approximation reintroduces asymmetric vision
// at specific angles. The denominator is always positive.
type slope struct {
	num, den int
}

func newSlope(num, den int) slope {
	if den < 0 {
		num, den = -num, -den
	}
	return slope{num: num, den: den}
}

// roundTiesUp rounds s times d to the nearest integer, rounding exact
// halves up: [x, x+0.5) to x and [x+0.5, x+1) to x+1.
func (s slope) roundTiesUp(d int) int {
	return floorDiv(2*s.num*d+s.den, 2*s.den)
}

// roundTiesDown rounds s times d to the nearest integer, rounding exact
// halves down: [x, x+0.5] to x and (x+0.5, x+1) to x+1.
func (s slope) roundTiesDown(d int) int {
	return ceilDiv(2*s.num*d-s.den, 2*s.den)
}

// atMost reports whether s times d is at most n.
func (s slope) atMost(d, n int) bool {
	return s.num*d <= n*s.den
}

// atLeast reports whether s times d is at least n.
func (s slope) atLeast(d, n int) bool {
	return s.num*d >= n*s.den
}

// floorDiv divides a by b, rounding toward negative infinity. b must be
// positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides a by b, rounding toward positive infinity. b must be
// positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
