package nat

import "math/bits"

// Knuth Algorithm D (TAOCP vol. 2, §4.3.1) is the base case for every
// division path in this package: schoolbook division below the
// Burnikel-Ziegler threshold, and the recursion floor for both
// Burnikel-Ziegler and Barrett. The JDK's MutableBigInteger class, which
// implements Algorithm D in the original source this kernel is ported
// from, was not present in the retrieved reference material (only
// BigInteger.java itself was retrieved), so this is a from-scratch,
// digit-at-a-time long division over base-2^32 limbs: bring down one
// limb of the dividend at a time, estimate the next quotient limb from
// the two leading limbs of the running remainder, and correct by
// comparing the trial product against the remainder and decrementing
// until it fits. This is the same recurrence Algorithm D describes: the
// divisor is normalized (see divKnuth), so an estimate taken from the
// divisor's leading limb alone exceeds the true quotient limb by at most
// two. Algorithm D's further refinement against the divisor's second limb
// is omitted; the plain correction loop absorbs those at most two
// decrements instead.

// padHigh returns x left-padded with zero limbs to length n (a no-op,
// returning x itself, if x is already at least that long).
func padHigh(x nat, n int) nat {
	if len(x) >= n {
		return x
	}
	z := make(nat, n)
	copy(z[n-len(x):], x)
	return z
}

// valCmp compares x and y by value, ignoring any leading zero limbs
// either may carry.
func valCmp(x, y nat) int {
	return cmp(norm(x), norm(y))
}

// mulByWord returns y*w for a single limb w.
func mulByWord(y nat, w Word) nat {
	if w == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(y)+1)
	c := mulAddVWW(z[1:], y, w, 0)
	z[0] = c
	return norm(z)
}

// divWord divides x by the single limb y, and is the fast path used
// whenever the divisor is one limb wide.
func divWord(x nat, y Word) (q nat, r Word) {
	z := make(nat, len(x))
	r = divWVW(z, 0, x, y)
	return norm(z), r
}

// divKnuth divides x by y (both minimal-form, y nonzero) and returns the
// quotient and remainder, with 0 <= r < y. The divisor is normalized
// (shifted so its leading limb's top bit is set) before the digit loop
// runs, the classical Algorithm D precondition that bounds the trial
// quotient's correction loop to a small constant number of decrements;
// the remainder is shifted back down by the same amount before it is
// returned. Scaling dividend and divisor by the same power of two leaves
// the quotient unchanged and scales the remainder by that same power.
func divKnuth(x, y nat) (q, r nat) {
	if len(y) == 0 {
		panic("nat: division by zero")
	}
	if len(y) == 1 {
		qq, rr := divWord(x, y[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, nat{rr}
	}
	if cmp(x, y) < 0 {
		return nil, x.clone()
	}

	shift := int(bits.LeadingZeros32(y[0]))
	xn, yn := x, y
	if shift > 0 {
		xn = shiftLeftBits(x, shift)
		yn = shiftLeftBits(y, shift)
	}
	q, rn := divKnuthCore(xn, yn)
	if shift > 0 {
		r = shiftRightBits(rn, shift)
	} else {
		r = rn
	}
	return q, r
}

func divKnuthCore(x, y nat) (q, r nat) {
	n := len(x)
	qLimbs := make(nat, n)
	var cur nat

	for i := 0; i < n; i++ {
		cur = append(cur, x[i])
		cur = norm(cur)

		if valCmp(cur, y) < 0 {
			qLimbs[i] = 0
			continue
		}

		// Estimate the next quotient limb from the leading
		// (most-significant) limbs of cur that line up with y's leading
		// limb, divided by that limb, then correct downward. cur is
		// big-endian: when cur is one limb longer than y those are cur[0]
		// and cur[1]; when it is as long as y, cur[0] alone.
		var num uint64
		if len(cur) > len(y) {
			num = uint64(cur[0])<<wordBits | uint64(cur[1])
		} else {
			num = uint64(cur[0])
		}
		trial := num / uint64(y[0])
		if trial > wordMax {
			trial = wordMax
		}
		qd := Word(trial)
		if qd == 0 {
			qd = 1
		}

		prod := mulByWord(y, qd)
		for qd > 0 && valCmp(prod, cur) > 0 {
			qd--
			prod = mulByWord(y, qd)
		}

		padded := padHigh(cur, len(prod))
		cur = sub(padded, prod)
		qLimbs[i] = qd
	}

	return norm(qLimbs), cur
}
