package nat

import "io"

// isProbablePrime, primeToCertainty, Miller-Rabin, and the Lucas
// probable-prime test, grounded on spec's §4.6 description (itself a
// distillation of BigInteger.java's primeToCertainty/passesMillerRabin/
// passesLucasLehmer and their JDK9 strong-Lucas replacement).

func isProbablePrime(n nat, certainty int, r io.Reader) (bool, error) {
	if certainty <= 0 {
		return true, nil
	}
	if n.isZero() {
		return false, nil
	}
	if len(n) == 1 && n[0] == 1 {
		return false, nil
	}
	if len(n) == 1 && n[0] == 2 {
		return true, nil
	}
	if n.bit(0) == 0 {
		return false, nil
	}
	return primeToCertainty(n, r)
}

func roundsForBitLen(bits int) int {
	switch {
	case bits < 100:
		return 50
	case bits < 256:
		return 27
	case bits < 512:
		return 15
	case bits < 768:
		return 8
	case bits < 1024:
		return 4
	default:
		return 2
	}
}

// primeToCertainty runs the bit-length-scaled battery of Miller-Rabin
// rounds and, for n at least 100 bits, one additional Lucas probable-prime
// test.
func primeToCertainty(n nat, r io.Reader) (bool, error) {
	bits := n.bitLen()
	rounds := roundsForBitLen(bits)
	nMinus1 := subVal(n, nat{1})
	a, m := decomposeOddPart(nMinus1)

	for i := 0; i < rounds; i++ {
		ok, err := millerRabinRound(n, nMinus1, a, m, r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if bits >= 100 {
		if !lucasProbablePrime(n) {
			return false, nil
		}
	}
	return true, nil
}

func decomposeOddPart(nMinus1 nat) (a int, m nat) {
	a = nMinus1.trailingZeroBits()
	m = shiftRightBits(nMinus1, a)
	return
}

// millerRabinRound draws one witness b uniformly from (1, n) and runs a
// single Miller-Rabin round against it.
func millerRabinRound(n, nMinus1 nat, a int, m nat, r io.Reader) (bool, error) {
	var b nat
	for {
		cand, err := randNatBits(n.bitLen(), r)
		if err != nil {
			return false, err
		}
		if len(cand) <= 1 && (cand.isZero() || (len(cand) == 1 && cand[0] == 1)) {
			continue
		}
		if cmp(norm(cand), n) >= 0 {
			continue
		}
		b = cand
		break
	}

	z := modPow(b, m, n)
	if (len(z) == 1 && z[0] == 1) || valCmp(z, nMinus1) == 0 {
		return true, nil
	}
	for j := 0; j < a-1; j++ {
		z = modMul(z, z, n)
		if valCmp(z, nMinus1) == 0 {
			return true, nil
		}
		if len(z) == 1 && z[0] == 1 {
			return false, nil
		}
	}
	return false, nil
}

// randNatBits reads a uniformly random nat of exactly the given bit
// width (the top bit may be zero, matching the source's random-bits
// constructor semantics used for Miller-Rabin witness selection).
func randNatBits(bits int, r io.Reader) (nat, error) {
	if bits <= 0 {
		return nil, nil
	}
	nBytes := (bits + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	excess := nBytes*8 - bits
	if excess > 0 {
		buf[0] &= 0xFF >> uint(excess)
	}
	return fromBytesBigEndian(buf), nil
}

// lucasProbablePrime runs the Lucas probable-prime test: find the
// first D in 5, -7, 9, -11, ... with Jacobi(D, n) = -1, then verify that
// the (n+1)-th term of the Lucas U-sequence for (P=1, Q=(1-D)/4) is 0 mod
// n.
func lucasProbablePrime(n nat) bool {
	mag := Word(5)
	sign := 1
	var D snat
	found := false
	for tries := 0; tries < 1000; tries++ {
		D = snat{sign, nat{mag}}
		j := jacobiSymbol(D, n)
		if j == -1 {
			found = true
			break
		}
		if j == 0 {
			return false
		}
		mag += 2
		sign = -sign
	}
	if !found {
		return false
	}

	Q := sDivSmallExact(sSub(sOf(nat{1}), D), 4)
	k := add(n, nat{1})
	u, _, _ := lucasUVSequence(D, Q, k, n)
	return u.isZero()
}

// lucasUVSequence computes (U_k, V_k, Q^k mod n) for the Lucas sequence
// pair with parameters P=1, Q via the standard double-and-halve binary
// recurrence (U_{2j}=U_j V_j, V_{2j}=V_j^2-2Q^j, and the add-one step
// U_{2j+1}=(U_{2j}+V_{2j})/2, V_{2j+1}=(D*U_{2j}+V_{2j})/2), reducing mod
// n at every step.
func lucasUVSequence(D, Q snat, k, n nat) (u, v, qk nat) {
	u = nat{1}
	v = nat{1}
	qk = normalizeModSigned(Q, n)

	for i := k.bitLen() - 2; i >= 0; i-- {
		u2 := mod(mul(u, v), n)
		vsq := mod(mul(v, v), n)
		twoQk := mod(mulByWord(qk, 2), n)
		v2 := subModN(vsq, twoQk, n)
		qk2 := mod(mul(qk, qk), n)

		if k.bit(i) == 1 {
			sum := mod(add(u2, v2), n)
			u3 := halveModN(sum, n)
			dU2 := normalizeModSigned(sMul(D, sOf(u2)), n)
			vsum := mod(add(dU2, v2), n)
			v3 := halveModN(vsum, n)
			qk3 := normalizeModSigned(sMul(sOf(qk2), Q), n)
			u, v, qk = u3, v3, qk3
		} else {
			u, v, qk = u2, v2, qk2
		}
	}
	return
}

func subModN(a, b, n nat) nat {
	if valCmp(a, b) >= 0 {
		return subVal(a, b)
	}
	return subVal(n, subVal(b, a))
}

func halveModN(x, n nat) nat {
	if x.bit(0) == 1 {
		x = add(x, n)
	}
	return shiftRightBits(x, 1)
}

// jacobiSymbol computes the Jacobi symbol (a|n) for odd positive n and
// arbitrary (possibly negative) a, via the binary algorithm described in
// "The Yacas Book of Algorithms" — the same formulation Go's own
// math/big.Jacobi uses, reimplemented here over this package's own
// sign-magnitude helpers since nat itself carries no sign.
func jacobiSymbol(a snat, n nat) int {
	b := sOf(n)
	j := 1
	for {
		if len(b.mag) == 1 && b.mag[0] == 1 {
			return j
		}
		if a.sign == 0 {
			return 0
		}
		a = sEuclidMod(a, b)
		if a.sign == 0 {
			return 0
		}

		s := a.mag.trailingZeroBits()
		if s&1 != 0 {
			bmod8 := b.mag[len(b.mag)-1] & 7
			if bmod8 == 3 || bmod8 == 5 {
				j = -j
			}
		}
		c := snat{a.sign, shiftRightBits(a.mag, s)}

		if b.mag[len(b.mag)-1]&3 == 3 && c.mag[len(c.mag)-1]&3 == 3 {
			j = -j
		}

		a, b = b, c
	}
}

// sEuclidMod returns a mod b (Euclidean convention: always non-negative)
// for positive b.
func sEuclidMod(a, b snat) snat {
	if a.sign == 0 {
		return snat{}
	}
	_, rem := divKnuth(a.mag, b.mag)
	if a.sign > 0 || rem.isZero() {
		return sOf(rem)
	}
	return sOf(subVal(b.mag, rem))
}

// natFromInt converts a non-negative machine int to a nat.
func natFromInt(v int) nat {
	if v == 0 {
		return nil
	}
	u := uint64(v)
	if u <= wordMax {
		return nat{Word(u)}
	}
	return norm(nat{Word(u >> wordBits), Word(u)})
}

var smallTrialPrimes = []Word{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

func trialDivideSmall(cand nat, primes []Word) bool {
	for _, p := range primes {
		_, rem := divWord(cand, p)
		if rem == 0 {
			return false
		}
	}
	return true
}

// generatePrime produces a probable prime of exactly the given bit
// length, per spec's size-dependent strategy: direct trial division and
// certainty testing below 95 bits, sieve-then-test above it.
func generatePrime(bits int, r io.Reader) (nat, error) {
	if bits < 95 {
		return generateSmallPrime(bits, r)
	}
	return generateLargePrime(bits, r)
}

func generateSmallPrime(bits int, r io.Reader) (nat, error) {
	for {
		cand, err := randNatBits(bits, r)
		if err != nil {
			return nil, err
		}
		cand = cand.setBit(bits - 1)
		cand = cand.setBit(0)
		if cand.bitLen() > 6 && !trialDivideSmall(cand, smallTrialPrimes) {
			continue
		}
		ok, err := primeToCertainty(cand, r)
		if err != nil {
			return nil, err
		}
		if ok {
			return cand, nil
		}
	}
}

func generateLargePrime(bits int, r io.Reader) (nat, error) {
	sieveLen := (bits/20 + 1) * 64
	base, err := randNatBits(bits, r)
	if err != nil {
		return nil, err
	}
	base = base.setBit(bits - 1)
	base = base.clearBit(0)

	for {
		sieve := newBitSieve(base, sieveLen)
		for i := 0; i < sieveLen; i++ {
			if sieve.bits[i] {
				continue
			}
			cand := add(base, natFromInt(2*i+1))
			ok, err := primeToCertainty(cand, r)
			if err != nil {
				return nil, err
			}
			if ok {
				return cand, nil
			}
		}
		base = add(base, natFromInt(2*sieveLen))
	}
}

// nextProbablePrime returns the smallest probable prime strictly greater
// than n, via the same small/large sieve split as generatePrime.
func nextProbablePrime(n nat, r io.Reader) (nat, error) {
	if len(n) <= 1 && (n.isZero() || n[0] < 2) {
		return nat{2}, nil
	}
	cand := add(n, nat{1})
	if cand.bit(0) == 0 {
		cand = add(cand, nat{1})
	}

	bits := cand.bitLen()
	if bits < 95 {
		for {
			if cand.bitLen() <= 6 || trialDivideSmall(cand, smallTrialPrimes) {
				ok, err := primeToCertainty(cand, r)
				if err != nil {
					return nil, err
				}
				if ok {
					return cand, nil
				}
			}
			cand = add(cand, nat{2})
		}
	}

	sieveLen := (bits/20 + 1) * 64
	base := cand
	if base.bit(0) != 0 {
		base = subVal(base, nat{1})
	}
	for {
		sieve := newBitSieve(base, sieveLen)
		for i := 0; i < sieveLen; i++ {
			if sieve.bits[i] {
				continue
			}
			c := add(base, natFromInt(2*i+1))
			if valCmp(c, cand) < 0 {
				continue
			}
			ok, err := primeToCertainty(c, r)
			if err != nil {
				return nil, err
			}
			if ok {
				return c, nil
			}
		}
		base = add(base, natFromInt(2*sieveLen))
	}
}
