package bignum

import (
	"math"

	"github.com/agbruneau/bignum/internal/nat"
)

// limbAt returns the i'th 32-bit limb (i=0 is least significant) of x's
// infinite-width two's-complement representation. For x >= 0 this is
// just the magnitude's limb, zero-extended. For x < 0 it is synthesized
// by locating the lowest nonzero magnitude limb (firstNonzeroLimb):
// limbs below it are zero, that limb itself is negated, and every limb
// above it is bitwise-complemented — the standard two's-complement
// construction for a multi-limb negation, sign-extending with all-ones
// above the magnitude's own limbs.
func (x *Int) limbAt(i int) uint32 {
	if x.sign >= 0 {
		return magWord(x.mag, i)
	}
	fz := firstNonzeroLimb(x.mag)
	switch {
	case i < fz:
		return 0
	case i == fz:
		return uint32(-int64(magWord(x.mag, i)))
	default:
		return ^magWord(x.mag, i)
	}
}

func magWord(m nat.Mag, i int) uint32 {
	n := len(m)
	if i < 0 || i >= n {
		return 0
	}
	return m[n-1-i]
}

func firstNonzeroLimb(m nat.Mag) int {
	n := len(m)
	for i := 0; i < n; i++ {
		if m[n-1-i] != 0 {
			return i
		}
	}
	return 0
}

// intFromLittleEndianLimbs reconstructs an Int from a little-endian
// limb vector produced by a bitwise operator, where limbs[len-1]'s sign
// bit (bit 31) determines the result's sign. A negative vector is
// converted back to sign-magnitude by two's-complement negation.
func intFromLittleEndianLimbs(limbs []uint32) *Int {
	n := len(limbs)
	if n == 0 {
		return ZERO
	}
	if int32(limbs[n-1]) >= 0 {
		return intFromLittleEndianMag(limbs, 1)
	}
	out := make([]uint32, n)
	carry := uint64(1)
	for i := 0; i < n; i++ {
		v := uint64(^limbs[i]) + carry
		out[i] = uint32(v)
		carry = v >> 32
	}
	return intFromLittleEndianMag(out, -1)
}

func intFromLittleEndianMag(limbs []uint32, sign int) *Int {
	n := len(limbs)
	mag := make(nat.Mag, n)
	for i := 0; i < n; i++ {
		mag[n-1-i] = limbs[i]
	}
	j := 0
	for j < len(mag) && mag[j] == 0 {
		j++
	}
	mag = mag[j:]
	if len(mag) == 0 {
		return ZERO
	}
	return newInt(sign, mag)
}

func bitwiseOp(x, y *Int, f func(a, b uint32) uint32) *Int {
	n := len(x.mag)
	if len(y.mag) > n {
		n = len(y.mag)
	}
	n++
	limbs := make([]uint32, n)
	for i := 0; i < n; i++ {
		limbs[i] = f(x.limbAt(i), y.limbAt(i))
	}
	return intFromLittleEndianLimbs(limbs)
}

// And returns x & y.
func (x *Int) And(y *Int) *Int { return bitwiseOp(x, y, func(a, b uint32) uint32 { return a & b }) }

// Or returns x | y.
func (x *Int) Or(y *Int) *Int { return bitwiseOp(x, y, func(a, b uint32) uint32 { return a | b }) }

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int { return bitwiseOp(x, y, func(a, b uint32) uint32 { return a ^ b }) }

// AndNot returns x &^ y.
func (x *Int) AndNot(y *Int) *Int {
	return bitwiseOp(x, y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns ^x, i.e. -(x+1).
func (x *Int) Not() *Int {
	n := len(x.mag) + 1
	limbs := make([]uint32, n)
	for i := 0; i < n; i++ {
		limbs[i] = ^x.limbAt(i)
	}
	return intFromLittleEndianLimbs(limbs)
}

// TestBit reports whether bit i of x's infinite two's-complement
// representation is set. Fails with DomainError for a negative index.
func (x *Int) TestBit(i int) (bool, error) {
	if i < 0 {
		return false, newDomainError("bit index %d is negative", i)
	}
	w := x.limbAt(i / 32)
	return (w>>uint(i%32))&1 == 1, nil
}

// SetBit returns x with bit i set. Fails with DomainError for a
// negative index.
func (x *Int) SetBit(i int) (*Int, error) {
	if i < 0 {
		return nil, newDomainError("bit index %d is negative", i)
	}
	set, err := ONE.ShiftLeft(int32(i))
	if err != nil {
		return nil, err
	}
	return x.Or(set), nil
}

// ClearBit returns x with bit i cleared. Fails with DomainError for a
// negative index.
func (x *Int) ClearBit(i int) (*Int, error) {
	if i < 0 {
		return nil, newDomainError("bit index %d is negative", i)
	}
	mask, err := ONE.ShiftLeft(int32(i))
	if err != nil {
		return nil, err
	}
	return x.AndNot(mask), nil
}

// FlipBit returns x with bit i toggled. Fails with DomainError for a
// negative index.
func (x *Int) FlipBit(i int) (*Int, error) {
	if i < 0 {
		return nil, newDomainError("bit index %d is negative", i)
	}
	mask, err := ONE.ShiftLeft(int32(i))
	if err != nil {
		return nil, err
	}
	return x.Xor(mask), nil
}

// ShiftLeft returns x << n. A negative n shifts right instead (matching
// the source's single combined shift operator). Fails with DomainError
// for n == math.MinInt32, since -n would overflow int32.
func (x *Int) ShiftLeft(n int32) (*Int, error) {
	if n == math.MinInt32 {
		return nil, newDomainError("shift distance %d has no negation", n)
	}
	if n < 0 {
		return x.ShiftRight(-n)
	}
	if x.sign == 0 || n == 0 {
		return x, nil
	}
	return newInt(x.sign, nat.ShiftLeft(x.mag, int(n))), nil
}

// ShiftRight returns x >> n, an arithmetic shift that rounds toward
// negative infinity for negative x. A negative n shifts left instead.
// Fails with DomainError for n == math.MinInt32.
func (x *Int) ShiftRight(n int32) (*Int, error) {
	if n == math.MinInt32 {
		return nil, newDomainError("shift distance %d has no negation", n)
	}
	if n < 0 {
		return x.ShiftLeft(-n)
	}
	if x.sign == 0 || n == 0 {
		return x, nil
	}
	q := nat.ShiftRight(x.mag, int(n))
	if x.sign > 0 {
		return newInt(1, q), nil
	}
	// Negative: floor((-m)/2^n) = -ceil(m/2^n). ceil = floor plus one
	// if any bit was shifted off.
	if nat.ShiftedOffBits(x.mag, int(n)) {
		q = nat.Add(q, nat.Mag{1})
	}
	return newInt(-1, q), nil
}
