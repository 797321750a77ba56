package nat

// mod returns x mod m for m != 0.
func mod(x, m nat) nat {
	if valCmp(x, m) < 0 {
		return norm(x.clone())
	}
	_, r := divKnuth(x, m)
	return r
}

// modMul returns x*y mod m.
func modMul(x, y, m nat) nat {
	return mod(mul(x, y), m)
}

// modPow computes base^exp mod m, grounded on BigInteger.java's modPow:
// an even modulus is split into its power-of-two part and its odd part,
// each exponentiated separately (modPowOdd for the odd part via
// sliding-window exponentiation, modPow2 for the power-of-two part by
// simple masking), and the two results are reassembled with Garner's
// two-modulus CRT formula (§5.2). m must be non-zero.
func modPow(base, exp, m nat) nat {
	if m.isZero() {
		panic("nat: modulus must be non-zero")
	}
	if len(m) == 1 && m[0] == 1 {
		return nil
	}
	base = mod(base, m)
	if exp.isZero() {
		return nat{1}
	}
	if base.isZero() {
		return nil
	}

	k := m.trailingZeroBits()
	if k <= 0 {
		return modPowOdd(base, exp, m)
	}
	oddM := shiftRightBits(m, k)
	if len(oddM) == 1 && oddM[0] == 1 {
		return modPow2(base, exp, k)
	}

	r1 := modPowOdd(mod(base, oddM), exp, oddM)
	r2 := modPow2(base, exp, k)

	oddModK := maskBits(oddM, k)
	inv, ok := modInverse(oddModK, twoPow(k))
	if !ok {
		// oddM is odd by construction, so it is always invertible mod
		// 2^k; this branch cannot be reached by a well-formed modulus.
		return r1
	}

	diff := subModK(r2, maskBits(r1, k), k)
	h := maskBits(mul(diff, inv), k)
	return add(r1, mul(h, oddM))
}

// modPow2 computes base^exp mod 2^k by plain left-to-right
// square-and-multiply, masking to the low k bits after every step.
func modPow2(base, exp nat, k int) nat {
	if k <= 0 {
		return nil
	}
	b := maskBits(base, k)
	if b.isZero() {
		return nil
	}
	result := nat{1}
	for i := exp.bitLen() - 1; i >= 0; i-- {
		result = maskBits(mul(result, result), k)
		if exp.bit(i) == 1 {
			result = maskBits(mul(result, b), k)
		}
	}
	return result
}

// maskBits returns the low k bits of x as a standalone magnitude.
func maskBits(x nat, k int) nat {
	if k <= 0 || x.isZero() {
		return nil
	}
	if x.bitLen() <= k {
		return norm(x.clone())
	}
	limbs := (k + wordBits - 1) / wordBits
	z := x[len(x)-limbs:].clone()
	if r := k % wordBits; r != 0 {
		z[0] &= Word(1)<<uint(r) - 1
	}
	return norm(z)
}

// twoPow returns 2^k as a nat.
func twoPow(k int) nat {
	return nat(nil).setBit(k)
}

// subModK returns (a-b) mod 2^k for a, b already in [0, 2^k).
func subModK(a, b nat, k int) nat {
	if valCmp(a, b) >= 0 {
		return maskBits(subVal(a, b), k)
	}
	return maskBits(subVal(twoPow(k), subVal(b, a)), k)
}
