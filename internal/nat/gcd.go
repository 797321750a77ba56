package nat

// gcd computes the greatest common divisor of x and y via the binary GCD
// algorithm (strip common factors of two, then repeatedly strip factors
// of two from the larger operand and subtract), grounded on spec's
// description of the hybrid binary/Euclidean GCD (§4.2). gcd(0,0) = 0 by
// convention; this package's unsigned binary GCD naturally falls to the
// Euclidean-subtraction step for any case not resolved by factors of two,
// which subsumes the "fall back to simple Euclidean reduction" half of
// the hybrid spec.md describes without needing a separate Lehmer-style
// phase.
func gcd(x, y nat) nat {
	if x.isZero() {
		return y.clone()
	}
	if y.isZero() {
		return x.clone()
	}

	a, b := x.clone(), y.clone()
	shift := 0
	for a.bit(0) == 0 && b.bit(0) == 0 {
		a = shiftRightBits(a, 1)
		b = shiftRightBits(b, 1)
		shift++
	}
	for a.bit(0) == 0 {
		a = shiftRightBits(a, 1)
	}

	for !b.isZero() {
		for b.bit(0) == 0 {
			b = shiftRightBits(b, 1)
		}
		if valCmp(a, b) > 0 {
			a, b = b, a
		}
		b = subVal(b, a)
	}

	return shiftLeftBits(a, shift)
}

// modInverse computes a^-1 mod m via the extended Euclidean algorithm,
// tracking only the Bézout coefficient of a (not of m, which this package
// never needs). Returns ok=false if gcd(a,m) != 1.
func modInverse(a, m nat) (nat, bool) {
	r0, r1 := sOf(m), sOf(a)
	t0, t1 := snat{}, snat{1, nat{1}}

	for r1.sign != 0 {
		q, rem := divKnuth(r0.mag, r1.mag)
		qS := sOf(q)
		var nextR1 snat
		if !rem.isZero() {
			nextR1 = snat{1, rem}
		}
		r0, r1 = r1, nextR1
		t0, t1 = t1, sSub(t0, sMul(qS, t1))
	}

	if len(r0.mag) != 1 || r0.mag[0] != 1 {
		return nil, false
	}
	return normalizeModSigned(t0, m), true
}

// normalizeModSigned reduces a signed magnitude into [0, m).
func normalizeModSigned(t snat, m nat) nat {
	if t.sign == 0 {
		return nil
	}
	var rem nat
	if valCmp(t.mag, m) >= 0 {
		_, rem = divKnuth(t.mag, m)
	} else {
		rem = t.mag
	}
	if t.sign < 0 {
		if rem.isZero() {
			return nil
		}
		return subVal(m, rem)
	}
	return norm(rem)
}
