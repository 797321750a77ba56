package nat

// mulBasic is the grade-school O(n*m) multiply: for each limb of y, scale
// x by it and accumulate at the matching shifted position, exactly the
// textbook long-multiplication algorithm extended to base-2^32 digits.
// Grounded on BigInteger.java's multiplyToLen.
func mulBasic(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for j := len(y) - 1; j >= 0; j-- {
		yj := y[j]
		if yj == 0 {
			continue
		}
		// z[0 : len(x)+j+1] accumulates x*yj shifted so its least
		// significant limb lands at position len(y)-1-j from the end.
		shift := len(y) - 1 - j
		hi := len(z) - shift
		lo := hi - len(x)
		c := addMulVVW(z[lo:hi], x, yj)
		// propagate the final carry into whatever limbs remain above lo
		k := lo - 1
		for c != 0 && k >= 0 {
			s, cc := addWordCarry(z[k], c)
			z[k] = s
			c = cc
			k--
		}
	}
	return norm(z)
}

func addWordCarry(a, c Word) (Word, Word) {
	s := a + c
	if s < a {
		return s, 1
	}
	return s, 0
}

// squareBasic computes x*x. BigInteger.java's squareToLen computes this by
// halving the work: summing the below-diagonal partial products once,
// doubling, and adding the diagonal terms x[i]*x[i], since the
// above-diagonal products mirror the below-diagonal ones. That halving is
// a pure performance optimization with no effect on the result, so this
// base case instead calls the general multiply with both operands equal,
// which is mechanically simpler to get right and produces the identical
// value.
func squareBasic(x nat) nat {
	return mulBasic(x, x)
}
