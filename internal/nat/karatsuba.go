package nat

import "golang.org/x/sync/errgroup"

// Karatsuba multiplication, grounded on BigInteger.java's
// multiplyKaratsuba: split each operand into high/low halves at
// ceil(max/2) limbs, compute p1 = xh*yh, p2 = xl*yl, p3 =
// (xh+xl)*(yh+yl), and recompose as
// p1*2^(64*half) + (p3-p1-p2)*2^(32*half) + p2.
//
// The three sub-products are independent, so they fan out across
// goroutines the same way the teacher's executeFFTTransformsParallel
// runs its three FFT passes concurrently, using golang.org/x/sync/errgroup
// for structured cancellation-free fan-out (none of these three calls can
// themselves fail; errgroup is used for the same disciplined shape the
// teacher uses elsewhere, not because an error path exists here).
func mulKaratsuba(x, y nat) nat {
	half := (maxInt(len(x), len(y)) + 1) / 2
	xh, xl := splitAt(x, half)
	yh, yl := splitAt(y, half)

	var p1, p2, p3 nat
	var g errgroup.Group
	g.Go(func() error { p1 = mul(xh, yh); return nil })
	g.Go(func() error { p2 = mul(xl, yl); return nil })
	g.Go(func() error {
		xSum := add(xh, xl)
		ySum := add(yh, yl)
		p3 = mul(xSum, ySum)
		return nil
	})
	_ = g.Wait()

	mid := subVal(subVal(p3, p1), p2)

	result := shiftLeftBits(p1, 64*half)
	result = add(result, shiftLeftBits(mid, 32*half))
	result = add(result, p2)
	return norm(result)
}

// squareKaratsuba squares x using the same split as mulKaratsuba, with
// p1=xh*xh, p2=xl*xl, p3=(xh+xl)*(xh+xl) (i.e. squareKaratsuba need not
// special-case the cross term since x squared against itself collapses
// p3's two factors into one).
func squareKaratsuba(x nat) nat {
	half := (len(x) + 1) / 2
	xh, xl := splitAt(x, half)

	var p1, p2, p3 nat
	var g errgroup.Group
	g.Go(func() error { p1 = square(xh); return nil })
	g.Go(func() error { p2 = square(xl); return nil })
	g.Go(func() error {
		xSum := add(xh, xl)
		p3 = square(xSum)
		return nil
	})
	_ = g.Wait()

	mid := subVal(subVal(p3, p1), p2)

	result := shiftLeftBits(p1, 64*half)
	result = add(result, shiftLeftBits(mid, 32*half))
	result = add(result, p2)
	return norm(result)
}

// splitAt splits v into (high, low) at the low-order `half`-limb
// boundary: low is the least significant half limbs, high is everything
// above it. Either half may come back empty.
func splitAt(v nat, half int) (high, low nat) {
	if len(v) <= half {
		return nil, v
	}
	return v[:len(v)-half], v[len(v)-half:]
}
