package bignum

import (
	"io"

	"github.com/agbruneau/bignum/internal/nat"
)

// IsProbablePrime reports whether x is probably prime, running a
// Miller-Rabin battery (round count scaled to x's bit length) followed,
// for x of at least 100 bits, by a Lucas probable-prime test, using the
// process-wide secure RNG. A certainty of 0 or less reports true without
// testing; any positive certainty runs the same battery, whose round
// count is governed entirely by bit length, matching the source's own
// fixed schedule.
func (x *Int) IsProbablePrime(certainty int) (bool, error) {
	if x.sign <= 0 {
		return false, nil
	}
	return nat.IsProbablePrime(x.mag, certainty, defaultRNG())
}

// NextProbablePrime returns the smallest probable prime strictly
// greater than x, using the process-wide secure RNG.
func (x *Int) NextProbablePrime() (*Int, error) {
	mag := x.mag
	if x.sign < 0 {
		mag = nil
	}
	m, err := nat.NextProbablePrime(mag, defaultRNG())
	if err != nil {
		return nil, err
	}
	return newInt(1, m), nil
}

// GenProbablePrime returns a probable prime of exactly bitLength bits,
// read from rng (or the process-wide secure RNG if rng is nil).
// Fails with DomainError if bitLength < 2.
func GenProbablePrime(bitLength, certainty int, rng io.Reader) (*Int, error) {
	if bitLength < 2 {
		return nil, newDomainError("bit length %d is too small for a prime", bitLength)
	}
	m, err := nat.GeneratePrime(bitLength, rngOrDefault(rng))
	if err != nil {
		return nil, err
	}
	return newInt(1, m), nil
}

// ProbablePrime is an alias for GenProbablePrime with the default
// certainty, matching the source's two-argument factory.
func ProbablePrime(bitLength int, rng io.Reader) (*Int, error) {
	return GenProbablePrime(bitLength, 0, rng)
}
