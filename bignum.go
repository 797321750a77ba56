// Package bignum implements immutable arbitrary-precision signed
// integers: the complete arithmetic surface of addition, subtraction,
// multiplication, division with remainder, modular arithmetic, GCD,
// bitwise and shift operations, primality testing and generation, and
// radix conversion. Values behave as if stored in infinite-width
// two's-complement, so the bitwise operators implicitly sign-extend the
// shorter operand.
//
// Internally every value is sign-magnitude: a sign in {-1,0,+1} plus an
// unsigned magnitude from the internal/nat kernel. Two's-complement
// semantics are synthesized on demand by projecting through a virtual
// little-endian limb view (see limbAt in bits.go) rather than stored
// directly, mirroring the source's own representation choice.
//
// This is a library: no CLI, no files, no environment variables, no
// wire protocol.
package bignum

import (
	"sync"

	"github.com/agbruneau/bignum/internal/nat"
)

// Int is an immutable arbitrary-precision signed integer. The zero
// value is not a valid Int; use ZERO or a constructor.
type Int struct {
	sign int      // -1, 0, or +1
	mag  nat.Mag  // minimal-form magnitude; empty iff sign == 0

	bitLenOnce   sync.Once
	bitLenVal    int
	bitCountOnce sync.Once
	bitCountVal  int
	lsbOnce      sync.Once
	lsbVal       int
}

// newInt normalizes (sign, mag) into an Int, collapsing to ZERO for a
// zero magnitude and reusing the small-constant pool where possible.
func newInt(sign int, mag nat.Mag) *Int {
	if mag.IsZero() {
		return ZERO
	}
	if len(mag) == 1 && mag[0] <= 16 {
		v := int64(mag[0])
		if sign < 0 {
			v = -v
		}
		if c := smallInt(v); c != nil {
			return c
		}
	}
	return &Int{sign: sign, mag: mag}
}

// NewFromInt64 returns the Int equal to v.
func NewFromInt64(v int64) *Int {
	if v == 0 {
		return ZERO
	}
	if c := smallInt(v); c != nil {
		return c
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-v)
	}
	return newInt(sign, natFromUint64(u))
}

// NewFromUint64 returns the Int equal to v.
func NewFromUint64(v uint64) *Int {
	if v == 0 {
		return ZERO
	}
	return newInt(1, natFromUint64(v))
}

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int { return x.sign }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.sign == 0 }

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return ZERO
	}
	return newInt(-x.sign, x.mag)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return newInt(1, x.mag)
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.sign != y.sign:
		if x.sign < y.sign {
			return -1
		}
		return 1
	case x.sign == 0:
		return 0
	case x.sign > 0:
		return nat.Cmp(x.mag, y.mag)
	default:
		return nat.Cmp(y.mag, x.mag)
	}
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int { return nat.Cmp(x.mag, y.mag) }

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case x.sign == 0:
		return y
	case y.sign == 0:
		return x
	case x.sign == y.sign:
		return newInt(x.sign, nat.Add(x.mag, y.mag))
	default:
		switch c := nat.Cmp(x.mag, y.mag); {
		case c == 0:
			return ZERO
		case c > 0:
			return newInt(x.sign, nat.Sub(x.mag, y.mag))
		default:
			return newInt(y.sign, nat.Sub(y.mag, x.mag))
		}
	}
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int { return x.Add(y.Neg()) }

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return ZERO
	}
	return newInt(x.sign*y.sign, nat.Mul(x.mag, y.mag))
}

// Square returns x*x.
func (x *Int) Square() *Int {
	if x.sign == 0 {
		return ZERO
	}
	return newInt(1, nat.Square(x.mag))
}

// DivMod returns the quotient and remainder of x/y using truncating
// division (quotient rounds toward zero; the remainder takes the sign
// of the dividend), matching the source's divide/remainder. Fails with
// DomainError if y is zero.
func (x *Int) DivMod(y *Int) (q, r *Int, err error) {
	if y.sign == 0 {
		return nil, nil, newDomainError("division by zero")
	}
	if x.sign == 0 {
		return ZERO, ZERO, nil
	}
	qm, rm := nat.DivMod(x.mag, y.mag)
	return newInt(x.sign*y.sign, qm), newInt(x.sign, rm), nil
}

// Quo returns the truncating quotient of x/y.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Rem returns the truncating remainder of x/y (sign of the dividend).
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// BitLength returns the number of bits in the minimal two's-complement
// representation of x, excluding the sign bit, lazily computed and
// cached once.
func (x *Int) BitLength() int {
	x.bitLenOnce.Do(func() {
		switch {
		case x.sign >= 0:
			x.bitLenVal = x.mag.BitLen()
		case isPowerOfTwoMag(x.mag):
			x.bitLenVal = x.mag.BitLen() - 1
		default:
			x.bitLenVal = x.mag.BitLen()
		}
	})
	return x.bitLenVal
}

// BitCount returns the number of bits in the two's-complement
// representation of x that differ from the sign bit (population count
// for x >= 0; population count of |x|-1 for x < 0, since NOT(x) = -x-1
// in two's complement), lazily computed and cached once.
func (x *Int) BitCount() int {
	x.bitCountOnce.Do(func() {
		if x.sign >= 0 {
			x.bitCountVal = x.mag.BitCount()
			return
		}
		x.bitCountVal = nat.Sub(x.mag, nat.Mag{1}).BitCount()
	})
	return x.bitCountVal
}

// LowestSetBit returns the index of x's lowest set bit, or -1 for zero.
// Negating a magnitude in two's complement never moves its lowest set
// bit, so this needs no sign-specific case.
func (x *Int) LowestSetBit() int {
	x.lsbOnce.Do(func() {
		if x.sign == 0 {
			x.lsbVal = -1
			return
		}
		x.lsbVal = x.mag.TrailingZeroBits()
	})
	return x.lsbVal
}

// Min returns the lesser of x and y.
func (x *Int) Min(y *Int) *Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the greater of x and y.
func (x *Int) Max(y *Int) *Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

func isPowerOfTwoMag(m nat.Mag) bool {
	return !m.IsZero() && m.BitCount() == 1
}

func natFromUint64(v uint64) nat.Mag {
	if v == 0 {
		return nil
	}
	hi := uint32(v >> 32)
	lo := uint32(v)
	if hi == 0 {
		return nat.Mag{lo}
	}
	return nat.Mag{hi, lo}
}
