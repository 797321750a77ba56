package nat

// BitSieve, grounded on spec's description (§4.6, GLOSSARY): a bitmap
// indexed by odd offsets from an even base value, used to trial-divide a
// window of large-prime candidates by small primes before the expensive
// Miller-Rabin/Lucas-Lehmer tests run on any of them. bits[i] corresponds
// to the candidate base+2*i+1; a set bit means some small prime was found
// to divide that candidate evenly, so it can be skipped.
type bitSieve struct {
	base nat
	bits []bool
}

// smallSievePrimes is the table of odd primes this sieve marks multiples
// of, computed once by a sieve of Eratosthenes over a fixed small range.
var smallSievePrimes = sieveEratosthenes(65536)

func sieveEratosthenes(limit int) []Word {
	composite := make([]bool, limit+1)
	var primes []Word
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, Word(i))
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

func newBitSieve(base nat, length int) *bitSieve {
	s := &bitSieve{base: base, bits: make([]bool, length)}
	s.sieve()
	return s
}

func (s *bitSieve) sieve() {
	for _, p := range smallSievePrimes {
		if p == 2 {
			continue
		}
		start := firstSieveIndex(s.base, p)
		for i := start; i < len(s.bits); i += int(p) {
			s.bits[i] = true
		}
	}
}

// firstSieveIndex returns the smallest i >= 0 such that p divides
// base+2*i+1, for an odd prime p.
func firstSieveIndex(base nat, p Word) int {
	_, baseModP := divWord(base, p)
	target := (int64(p) - int64((baseModP+1)%p)) % int64(p)
	inv2 := modInverseSmallPrimeTwo(p)
	i := (target * int64(inv2)) % int64(p)
	if i < 0 {
		i += int64(p)
	}
	return int(i)
}

// modInverseSmallPrimeTwo returns the inverse of 2 mod the odd prime p,
// via plain machine-word extended Euclid (p is always small: at most
// smallSievePrimes' upper bound).
func modInverseSmallPrimeTwo(p Word) int64 {
	a, m := int64(2), int64(p)
	oldR, r := a, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldS < 0 {
		oldS += m
	}
	return oldS
}
