package nat

import "math/bits"

// Schönhage-Strassen multiplication: split both operands into equal-size
// pieces, run a length-L number-theoretic transform on each piece
// sequence over the Fermat ring Z/F_D (F_D = 2^D+1), multiply
// corresponding transform coefficients pointwise, invert the transform,
// and recombine the resulting convolution coefficients by shifting each
// into position and summing. Grounded on BigInteger.java's
// multiplySchönhageStrassen/squareSchönhageStrassen and the dft/idft/
// multModFn/squareModFn/cyclicShiftLeftBits/cyclicShiftRight block that
// backs them.
//
// 2 has multiplicative order exactly 2D in Z/F_D for every D (if e|2D
// were a smaller order, e would have to satisfy 0<e<=D, forcing
// 2^e-1 ≡ 0 mod F_D with 0 < 2^e-1 < F_D, impossible; so the true order
// exceeds D, and the only divisor of 2D greater than D is 2D itself).
// Picking D as any multiple of the transform length L therefore makes
// w = 2^(2D/L) a genuine primitive L-th root of unity, which is what
// lets cyclicShiftLeftBits stand in for multiplication by a power of w:
// multiplying by 2^s mod F_D is a shift-and-subtract, not a modular
// multiply, because 2^D ≡ -1 mod F_D.
//
// The transform itself is a textbook recursive radix-2 Cooley-Tukey NTT
// rather than a transliteration of the Java source's iterative,
// bit-reversal-indexed dft/idft: the root's exponent doubles one
// recursion level at a time (the same "exponent-doubling" relationship
// Java's getDftExponent/getIdftExponent compute via explicit bit
// reversal), which is the standard way to express this transform in a
// language without hand-rolled in-place index bookkeeping, and is far
// easier to verify by hand than porting pointer arithmetic nobody can
// run to check. Java's further optimization — splitting the convolution
// into a fast mod-2^(D+2) part (done by ordinary multiplication) plus a
// mod-F_D NTT part, combined by CRT — is a performance refinement on top
// of the NTT, not part of what makes this Schönhage-Strassen; it is
// dropped in favor of running the NTT alone at a modulus wide enough
// that no convolution coefficient can wrap around, per the margin
// computed in ssaModulusBits.

// multiplySSA computes x*y using the Schönhage-Strassen piece/NTT
// scheme. Both operands must be non-empty (non-zero); callers dispatch
// zero operands before reaching here.
func multiplySSA(x, y nat) nat {
	M := maxInt(x.bitLen(), y.bitLen())
	pieceBits, numPieces, L, D, q, logL := ssaPlan(M)
	rootExp := 2 * q

	xp := make([]nat, L)
	yp := make([]nat, L)
	copy(xp, splitIntoPieces(x, pieceBits, numPieces))
	copy(yp, splitIntoPieces(y, pieceBits, numPieces))

	X := nttTransform(xp, rootExp, D)
	Y := nttTransform(yp, rootExp, D)

	Z := make([]nat, L)
	for i := range Z {
		Z[i] = multModFn(X[i], Y[i], D)
	}

	conv := nttTransform(Z, inverseRootExp(rootExp, D), D)
	ssaInvScale(conv, D, logL)
	return ssaRecombine(conv, pieceBits)
}

// squareSSA computes x*x using the same scheme as multiplySSA, sharing
// piece splitting but transforming the operand only once and squaring
// each transform coefficient with squareModFn instead of multiplying
// two transforms together.
func squareSSA(x nat) nat {
	M := x.bitLen()
	pieceBits, numPieces, L, D, q, logL := ssaPlan(M)
	rootExp := 2 * q

	xp := make([]nat, L)
	copy(xp, splitIntoPieces(x, pieceBits, numPieces))

	X := nttTransform(xp, rootExp, D)

	Z := make([]nat, L)
	for i := range Z {
		Z[i] = squareModFn(X[i], D)
	}

	conv := nttTransform(Z, inverseRootExp(rootExp, D), D)
	ssaInvScale(conv, D, logL)
	return ssaRecombine(conv, pieceBits)
}

// ssaPlan picks the per-piece bit width, piece count, transform length
// (a power of two, at least twice the piece count so the cyclic
// convolution below equals the true linear convolution), the Fermat
// modulus bit width D, D's quotient by L, and log2(L).
func ssaPlan(M int) (pieceBits, numPieces, L, D, q, logL int) {
	pieceBits = ssaPieceBits(M)
	numPieces = ceilDiv(M, pieceBits)
	L = nextPow2(maxInt(2, 2*numPieces))
	logL = bits.Len(uint(L)) - 1
	D = ssaModulusBits(pieceBits, L)
	q = D / L
	return
}

// ssaModulusBits returns the smallest multiple of L that leaves enough
// headroom (2*pieceBits, since each convolution coefficient sums up to
// L products of two pieceBits-bit pieces, plus log2(L) bits for that
// sum, plus an 8-bit guard) that no coefficient can wrap around F_D.
func ssaModulusBits(pieceBits, L int) int {
	logL := bits.Len(uint(L)) - 1
	minBits := 2*pieceBits + logL + 8
	D := ceilDiv(minBits, L) * L
	if D < L {
		D = L
	}
	return D
}

func inverseRootExp(rootExp, D int) int {
	twoD := 2 * D
	return ((twoD - rootExp) % twoD + twoD) % twoD
}

// ssaInvScale multiplies every transform coefficient by L^-1 mod F_D
// (L is a power of two, so its inverse is itself a power-of-two shift)
// to undo the factor of L the forward-then-inverse transform pair
// introduces.
func ssaInvScale(conv []nat, D, logL int) {
	invL := cyclicShiftLeftBits(nat{1}, 2*D-logL, D)
	for i := range conv {
		conv[i] = multModFn(conv[i], invL, D)
	}
}

// ssaRecombine reassembles convolution coefficients (each an exact,
// non-wrapped value by construction of ssaModulusBits) into the final
// product by shifting each into its piece position and summing.
func ssaRecombine(conv []nat, pieceBits int) nat {
	var result nat
	for k, c := range conv {
		if c == nil || c.isZero() {
			continue
		}
		result = add(result, shiftLeftBits(c, k*pieceBits))
	}
	return norm(result)
}

// nttTransform evaluates a length-len(a) (a power of two) transform of a
// over Z/F_D at the powers of w = 2^rootExp, by recursive radix-2
// Cooley-Tukey: w^2 is a primitive root for the two half-size halves,
// so rootExp simply doubles (mod 2D) one recursion level at a time.
// Calling this with rootExp and then with inverseRootExp(rootExp, D)
// computes the forward and inverse transform respectively; the caller
// is responsible for the final 1/L scaling (ssaInvScale).
func nttTransform(a []nat, rootExp, D int) []nat {
	n := len(a)
	if n == 1 {
		return []nat{a[0]}
	}

	half := n / 2
	even := make([]nat, half)
	odd := make([]nat, half)
	for i := 0; i < half; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}

	nextExp := (rootExp * 2) % (2 * D)
	evenT := nttTransform(even, nextExp, D)
	oddT := nttTransform(odd, nextExp, D)

	result := make([]nat, n)
	for k := 0; k < half; k++ {
		t := cyclicShiftLeftBits(oddT[k], rootExp*k, D)
		result[k] = addModFn(evenT[k], t, D)
		result[k+half] = subModFn(evenT[k], t, D)
	}
	return result
}

// ssaPieceBits picks the per-piece bit width for a given operand bit
// length M, growing roughly with sqrt(M) so the piece count and the
// per-piece width stay balanced.
func ssaPieceBits(M int) int {
	p := 1
	for p*p < M {
		p++
	}
	if p < 32 {
		p = 32
	}
	return p
}

// splitIntoPieces slices x into count big-endian pieces of pieceBits bits
// each, least-significant piece first (index 0), zero-extending the most
// significant piece as needed. A nil entry denotes an all-zero piece.
func splitIntoPieces(x nat, pieceBits, count int) []nat {
	pieces := make([]nat, count)
	for i := 0; i < count; i++ {
		lo := i * pieceBits
		hi := lo + pieceBits
		piece := pieceBitsSlice(x, lo, hi)
		if !piece.isZero() {
			pieces[i] = piece
		}
	}
	return pieces
}

// pieceBitsSlice extracts bits [lo, hi) of x (bit 0 = least significant)
// as a standalone magnitude.
func pieceBitsSlice(x nat, lo, hi int) nat {
	if lo >= x.bitLen() {
		return nil
	}
	shifted := shiftRightBits(x, lo)
	return maskBits(shifted, hi-lo)
}

// fermatModulusBits returns 2^D+1 as a nat, for an arbitrary bit count D
// (unlike a limb-count-indexed Fermat modulus, D need not be a multiple
// of the word width: the transform length L need not divide 32).
func fermatModulusBits(D int) nat {
	return nat(nil).setBit(D).setBit(0)
}

// cyclicShiftLeftBits returns x*2^shift mod F_D, exploiting 2's
// multiplicative order 2D in Z/F_D: reduce shift mod 2D, fold the top
// half of that range into a negation (2^D ≡ -1), then split x at bit
// D-s so the remaining shift-by-s is just "shift the low part up,
// subtract the high part that would have landed at bit D" followed by
// at most one normalizing add of F_D.
func cyclicShiftLeftBits(x nat, shift, D int) nat {
	if x.isZero() {
		return nil
	}
	twoD := 2 * D
	s := ((shift % twoD) + twoD) % twoD
	neg := false
	if s >= D {
		s -= D
		neg = true
	}

	hi := shiftRightBits(x, D-s)
	lo := maskBits(x, D-s)
	val := sSub(sOf(shiftLeftBits(lo, s)), sOf(hi))
	if neg {
		val = sNeg(val)
	}
	return reduceModFn(val, D)
}

// cyclicShiftRight returns x*2^-shift mod F_D.
func cyclicShiftRight(x nat, shift, D int) nat {
	return cyclicShiftLeftBits(x, -shift, D)
}

// reduceModFn normalizes a signed value known to lie in (-2*F_D, 2*F_D)
// into [0, F_D).
func reduceModFn(val snat, D int) nat {
	fn := fermatModulusBits(D)
	if val.sign < 0 {
		val = sAdd(val, sOf(fn))
	}
	if val.sign <= 0 {
		return snatToNat(val)
	}
	if cmp(val.mag, fn) >= 0 {
		val = snat{val.sign, subVal(val.mag, fn)}
	}
	return norm(val.mag)
}

// addModFn computes (x+y) mod F_D for x, y already in [0, F_D).
func addModFn(x, y nat, D int) nat {
	fn := fermatModulusBits(D)
	sum := add(x, y)
	if cmp(sum, fn) >= 0 {
		sum = subVal(sum, fn)
	}
	return norm(sum)
}

// subModFn computes (x-y) mod F_D for x, y already in [0, F_D).
func subModFn(x, y nat, D int) nat {
	if valCmp(x, y) >= 0 {
		return subVal(x, y)
	}
	fn := fermatModulusBits(D)
	return norm(subVal(fn, subVal(y, x)))
}

// negModFn returns -x mod F_D for x already in [0, F_D).
func negModFn(x nat, D int) nat {
	if x.isZero() {
		return nil
	}
	return norm(subVal(fermatModulusBits(D), x))
}

// multModFn computes (x*y) mod F_D, special-casing an operand equal to
// F_D-1 (which represents -1 in this ring) by negating the other operand
// instead of running a full multiply, same as BigInteger.java's
// multModFn.
func multModFn(x, y nat, D int) nat {
	fn := fermatModulusBits(D)
	fnMinus1 := subVal(fn, nat{1})
	switch {
	case valCmp(x, fnMinus1) == 0:
		return negModFn(y, D)
	case valCmp(y, fnMinus1) == 0:
		return negModFn(x, D)
	}
	return modFn(mul(x, y), D)
}

// squareModFn computes (x*x) mod F_D, special-casing x == F_D-1 (whose
// square is 1), same as BigInteger.java's squareModFn.
func squareModFn(x nat, D int) nat {
	fn := fermatModulusBits(D)
	if valCmp(x, subVal(fn, nat{1})) == 0 {
		return nat{1}
	}
	return modFn(square(x), D)
}

// modFn reduces x modulo F_D = 2^D+1.
func modFn(x nat, D int) nat {
	if x.isZero() {
		return nil
	}
	fn := fermatModulusBits(D)
	if valCmp(x, fn) < 0 {
		return norm(x.clone())
	}
	_, r := divKnuth(norm(x), fn)
	return r
}

// subVal returns a-b for values with a >= b, regardless of their
// relative slice lengths. Shared with toom3.go's snat arithmetic.
func subVal(a, b nat) nat {
	n := maxInt(len(a), len(b))
	return norm(sub(padHigh(a, n), padHigh(b, n)))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
