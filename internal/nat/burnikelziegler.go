package nat

// Burnikel-Ziegler division, grounded on BigInteger.java's
// divideAndRemainderBurnikelZieglerPositive/divide2n1n/divide3n2n and
// spec's description of block-recursive division (§4.4).
//
// The dividend is normalized and split into blocks of n limbs, sized so
// the divisor itself occupies exactly n limbs, then consumed two blocks
// at a time: each step divides a 2n-limb remainder by the n-limb divisor
// and folds the next block of the dividend in before repeating. That
// block folding is the outer "algorithm 3" loop from the Burnikel-Ziegler
// paper.
//
// Each 2n/n step (divide2n1n) is itself block-recursive rather than a
// direct schoolbook division: it views its dividend as four n/2-limb
// blocks [a1,a2,a3,a4] and solves it with two divide3n2n ("algorithm 2",
// a 3n/2n step) calls, each of which in turn either recurses into
// divide2n1n on half-size operands or falls back to a single-estimate
// quotient digit. Recursion bottoms out once a divisor would occupy
// fewer limbs than burnikelZieglerLimbThreshold, at which point
// divide2n1n calls divKnuth directly.
func divBurnikelZiegler(a, b nat) (q, r nat) {
	if len(b) < burnikelZieglerLimbThreshold {
		return divKnuth(a, b)
	}

	s := len(b)
	const blockThreshold = burnikelZieglerLimbThreshold
	m := 1
	for m*blockThreshold < s {
		m *= 2
	}
	n := m * ceilDiv(s, m)

	sigma := 0
	if want := 32 * n; want > b.bitLen() {
		sigma = want - b.bitLen()
	}
	aShift := shiftLeftBits(a, sigma)
	bShift := padHigh(shiftLeftBits(b, sigma), n)

	// t from bit length, not limb count: BigInteger.java's
	// divideAndRemainderBurnikelZieglerPositive computes
	// t = (a.bitLength()+n32)/n32 (n32 = 32*n), which adds one extra
	// margin block whenever aShift's bit length lands exactly on an
	// n32-limb boundary. Computing t from len(aShift) instead undercounts
	// that boundary case by one block.
	n32 := 32 * n
	t := (aShift.bitLen() + n32) / n32
	if t < 2 {
		t = 2
	}
	aShift = padHigh(aShift, t*n)

	blocks := make([]nat, t)
	for i := 0; i < t; i++ {
		blocks[i] = aShift[i*n : (i+1)*n]
	}

	rem := padHigh(append(append(nat{}, blocks[0]...), blocks[1]...), 2*n)
	var qAcc nat
	for i := 1; i < t; i++ {
		qi, ri := divide2n1n(rem, bShift, n)
		qAcc = add(shiftLeftBits(qAcc, 32*n), qi)
		if i+1 < t {
			rem = padHigh(append(append(nat{}, ri...), blocks[i+1]...), 2*n)
		} else {
			rem = ri
		}
	}

	r = shiftRightBits(rem, sigma)
	return norm(qAcc), norm(r)
}

// shiftRightLimbs returns floor(x / 2^(32*k)), i.e. x with its low k
// limbs dropped. Value-based rather than a fixed-width split, so it
// gives the same result whether or not x carries leading zero limbs.
func shiftRightLimbs(x nat, k int) nat {
	x = norm(x)
	if k <= 0 {
		return x
	}
	if len(x) <= k {
		return nil
	}
	return x[:len(x)-k]
}

// lowLimbs returns x mod 2^(32*k), i.e. the low k limbs of x.
func lowLimbs(x nat, k int) nat {
	x = norm(x)
	if k <= 0 || len(x) == 0 {
		return nil
	}
	if len(x) <= k {
		return x
	}
	return norm(x[len(x)-k:])
}

// midLimbs returns floor(x / 2^(32*k)) mod 2^(32*k): the k limbs of x
// just above the low k limbs. Mirrors BigInteger.shiftAndTruncate.
func midLimbs(x nat, k int) nat {
	x = norm(x)
	if len(x) <= k {
		return nil
	}
	if len(x) <= 2*k {
		return norm(x[:len(x)-k])
	}
	return norm(x[len(x)-2*k : len(x)-k])
}

// shiftLeftLimbs returns x * 2^(32*k) by appending k zero limbs.
func shiftLeftLimbs(x nat, k int) nat {
	x = norm(x)
	if x.isZero() || k <= 0 {
		return x
	}
	z := make(nat, len(x)+k)
	copy(z, x)
	return z
}

// onesLimbs returns 2^(32*k)-1: k limbs, each with every bit set.
func onesLimbs(k int) nat {
	if k <= 0 {
		return nil
	}
	z := make(nat, k)
	for i := range z {
		z[i] = wordMax
	}
	return z
}

func snatToNat(s snat) nat {
	if s.sign <= 0 {
		return nil
	}
	return norm(s.mag)
}

// divide2n1n implements algorithm 1 (pg. 4) of the Burnikel-Ziegler
// paper: it divides a dividend of at most 2n limbs by an n-limb divisor.
// b.bitLen() must occupy an even number of limbs for the recursive case;
// divide2n1n falls back to schoolbook division once that invariant
// breaks or the divisor is small enough that recursing wouldn't pay for
// itself.
func divide2n1n(a, b nat, n int) (q, r nat) {
	if n%2 != 0 || n < burnikelZieglerLimbThreshold {
		return divKnuth(a, b)
	}

	half := n / 2

	// view a as [a1,a2,a3,a4], each half limbs, and divide [a1,a2,a3] by b
	a123 := shiftRightLimbs(a, half)
	q1, r1 := divide3n2n(a123, b, half)

	// divide the concatenation of r1 and a4 by b
	a4 := lowLimbs(a, half)
	q2, r2 := divide3n2n(add(shiftLeftLimbs(r1, half), a4), b, half)

	q = add(shiftLeftLimbs(q1, half), q2)
	return norm(q), norm(r2)
}

// divide3n2n implements algorithm 2 (pg. 5) of the Burnikel-Ziegler
// paper: it divides a dividend of at most 3n limbs by a 2n-limb divisor,
// recursing into divide2n1n on half-size operands.
func divide3n2n(a, b nat, n int) (q, r nat) {
	// split a into 3 parts of length n or less
	a1 := shiftRightLimbs(a, 2*n)
	a2 := midLimbs(a, n)
	a3 := lowLimbs(a, n)

	// split b into 2 parts of length n or less
	b1 := shiftRightLimbs(b, n)
	b2 := lowLimbs(b, n)

	a12 := add(shiftLeftLimbs(a1, n), a2)

	var q2, r1 nat
	if cmp(a1, b1) < 0 {
		q2, r1 = divide2n1n(a12, b1, n)
	} else {
		// q = beta^n - 1, r1 = a12 - b1*2^n + b1
		q2 = onesLimbs(n)
		r1 = add(sub(a12, shiftLeftLimbs(b1, n)), b1)
	}

	d := mul(q2, b2)

	// r = r1*beta^n + a3 - d; this can go negative, so finish in
	// signed arithmetic and correct by adding b back until r is
	// nonnegative, same as the Java source's while loop.
	rs := sSub(sOf(add(shiftLeftLimbs(r1, n), a3)), sOf(d))
	qs := sOf(q2)
	bs := sOf(b)
	one := snat{1, nat{1}}
	for rs.sign < 0 {
		rs = sAdd(rs, bs)
		qs = sSub(qs, one)
	}

	return snatToNat(qs), snatToNat(rs)
}
