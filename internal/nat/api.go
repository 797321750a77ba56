package nat

import "io"

// Mag is this package's exported magnitude type: an unsigned big-endian
// limb sequence. The facade package builds its signed Int on top of Mag
// and never reaches into this package's internals directly, mirroring
// spec's MagBuffer/BigInt layering (§2): sign lives one layer up, this
// package only ever sees magnitudes.
type Mag = nat

// FromBytes parses a big-endian unsigned byte slice into a Mag.
func FromBytes(b []byte) Mag { return fromBytesBigEndian(b) }

// ToBytes renders x as a minimal-length big-endian unsigned byte slice.
func (x nat) ToBytes() []byte { return x.toBytesBigEndian() }

// BitLen returns the number of bits needed to represent x.
func (x nat) BitLen() int { return x.bitLen() }

// BitCount returns the number of set bits in x.
func (x nat) BitCount() int { return x.bitCount() }

// TrailingZeroBits returns the index of x's lowest set bit, or -1 for zero.
func (x nat) TrailingZeroBits() int { return x.trailingZeroBits() }

// IsZero reports whether x is the zero magnitude.
func (x nat) IsZero() bool { return x.isZero() }

// Bit returns the value of the i-th bit of x (0-indexed from the least
// significant bit).
func (x nat) Bit(i int) uint { return x.bit(i) }

// SetBit returns x with bit i set.
func (x nat) SetBit(i int) Mag { return x.setBit(i) }

// ClearBit returns x with bit i cleared.
func (x nat) ClearBit(i int) Mag { return x.clearBit(i) }

// Clone returns a fresh copy of x.
func (x nat) Clone() Mag { return x.clone() }

// Cmp compares x and y by value.
func Cmp(x, y Mag) int { return valCmp(x, y) }

// Add returns x+y.
func Add(x, y Mag) Mag { return add(x, y) }

// Sub returns x-y. Requires x >= y.
func Sub(x, y Mag) Mag { return subVal(x, y) }

// Mul dispatches to this package's size-appropriate multiply engine.
func Mul(x, y Mag) Mag { return mul(x, y) }

// MulForced multiplies using a specific engine, for differential testing.
func MulForced(x, y Mag, alg MulAlgorithm) Mag { return mulAlgo(x, y, alg) }

// Square dispatches to this package's size-appropriate square engine.
func Square(x Mag) Mag { return square(x) }

// SquareForced squares using a specific engine, for differential testing.
func SquareForced(x Mag, alg MulAlgorithm) Mag { return squareAlgo(x, alg) }

// DivMod dispatches to this package's size-appropriate division engine,
// returning quotient and remainder with 0 <= r < y.
func DivMod(x, y Mag) (q, r Mag) { return div(x, y) }

// DivModForced divides using a specific engine, for differential testing.
func DivModForced(x, y Mag, alg DivAlgorithm) (q, r Mag) { return divAlgo(x, y, alg) }

// ShiftLeft returns x << n.
func ShiftLeft(x Mag, n int) Mag { return shiftLeftBits(x, n) }

// ShiftRight returns x >> n, truncating toward zero.
func ShiftRight(x Mag, n int) Mag { return shiftRightBits(x, n) }

// ShiftedOffBits reports whether ShiftRight(x, n) would discard a set bit.
func ShiftedOffBits(x Mag, n int) bool { return shiftedOffBits(x, n) }

// GCD returns the greatest common divisor of x and y.
func GCD(x, y Mag) Mag { return gcd(x, y) }

// ModInverse returns a^-1 mod m, or ok=false if gcd(a,m) != 1.
func ModInverse(a, m Mag) (Mag, bool) { return modInverse(a, m) }

// Mod returns x mod m for m != 0.
func Mod(x, m Mag) Mag { return mod(x, m) }

// ModPow computes base^exp mod m for m != 0.
func ModPow(base, exp, m Mag) Mag { return modPow(base, exp, m) }

// IsProbablePrime reports whether n is probably prime, running the
// bit-length-scaled battery of tests described in spec §4.6.
func IsProbablePrime(n Mag, certainty int, r io.Reader) (bool, error) {
	return isProbablePrime(n, certainty, r)
}

// NextProbablePrime returns the smallest probable prime strictly
// greater than n.
func NextProbablePrime(n Mag, r io.Reader) (Mag, error) { return nextProbablePrime(n, r) }

// GeneratePrime returns a probable prime of exactly the given bit length.
func GeneratePrime(bits int, r io.Reader) (Mag, error) { return generatePrime(bits, r) }
