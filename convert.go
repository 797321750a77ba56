package bignum

import (
	"strconv"
	"strings"

	"github.com/agbruneau/bignum/internal/nat"
)

// String renders x in base 10. Implements fmt.Stringer.
func (x *Int) String() string {
	s, _ := x.ToStringRadix(10)
	return s
}

// ToStringRadix renders x in the given radix (2..36). An invalid radix
// falls back to 10. Conversion proceeds by repeated division by the
// largest power of radix that fits under 2^63, formatting each
// remainder chunk with strconv and left-padding every chunk but the
// most significant to a fixed digit width, then assembling
// most-significant chunk first.
func (x *Int) ToStringRadix(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		radix = 10
	}
	if x.sign == 0 {
		return "0", nil
	}
	chunkDigits, chunkPow := maxPowerFitting(uint64(radix))
	divisor := natFromUint64(chunkPow)
	mag := x.mag.Clone()
	var chunks []string
	for !mag.IsZero() {
		q, r := nat.DivMod(mag, divisor)
		chunks = append(chunks, strconv.FormatUint(magToUint64(r), radix))
		mag = q
	}
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		s := chunks[i]
		if i != len(chunks)-1 {
			for len(s) < chunkDigits {
				s = "0" + s
			}
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// FromString parses s as a signed integer in the given radix (2..36).
// An optional leading '+' or '-' precedes the digits. Fails with
// FormatError for a radix outside 2..36, an empty string, a bare sign
// with no digits, or any character that isn't a valid digit in the
// given radix.
func FromString(s string, radix int) (*Int, error) {
	if radix < 2 || radix > 36 {
		return nil, newFormatError("radix %d out of range [2,36]", radix)
	}
	if len(s) == 0 {
		return nil, newFormatError("empty string")
	}
	sign := 1
	start := 0
	switch s[0] {
	case '-':
		sign = -1
		start = 1
	case '+':
		start = 1
	}
	digits := s[start:]
	if len(digits) == 0 {
		return nil, newFormatError("no digits after sign")
	}

	chunkDigits, chunkPow := maxPowerFitting(uint64(radix))
	chunkMult := natFromUint64(chunkPow)

	var mag nat.Mag
	first := len(digits) % chunkDigits
	if first == 0 {
		first = chunkDigits
	}
	if first > len(digits) {
		first = len(digits)
	}
	i := 0
	for i < len(digits) {
		groupLen := chunkDigits
		if i == 0 {
			groupLen = first
		}
		group := digits[i : i+groupLen]
		val, err := strconv.ParseUint(group, radix, 64)
		if err != nil {
			return nil, newFormatError("invalid digit sequence %q for radix %d", group, radix)
		}
		groupMult := chunkMult
		if groupLen != chunkDigits {
			groupMult = natFromUint64(smallPow(uint64(radix), groupLen))
		}
		mag = nat.Add(nat.Mul(mag, groupMult), natFromUint64(val))
		i += groupLen
	}
	if mag.IsZero() {
		return ZERO, nil
	}
	return newInt(sign, mag), nil
}

// maxPowerFitting returns the digit count and value of the largest
// power of radix that stays under 2^63, so chunk values always fit a
// uint64 with headroom for the multiply-and-add in FromString.
func maxPowerFitting(radix uint64) (digits int, pow uint64) {
	pow = 1
	for {
		next := pow * radix
		if next/radix != pow || next >= (uint64(1)<<63) {
			break
		}
		pow = next
		digits++
	}
	return
}

func smallPow(base uint64, exp int) uint64 {
	p := uint64(1)
	for i := 0; i < exp; i++ {
		p *= base
	}
	return p
}

func magToUint64(m nat.Mag) uint64 {
	var v uint64
	for _, w := range m {
		v = v<<32 | uint64(w)
	}
	return v
}

// NewFromBytes parses b as a big-endian two's-complement byte slice.
// Fails with FormatError for an empty slice.
func NewFromBytes(b []byte) (*Int, error) {
	if len(b) == 0 {
		return nil, newFormatError("empty byte array")
	}
	if b[0]&0x80 == 0 {
		m := nat.FromBytes(b)
		if m.IsZero() {
			return ZERO, nil
		}
		return newInt(1, m), nil
	}
	// Negative: invert and add one to recover the magnitude.
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	m := nat.Add(nat.FromBytes(inv), nat.Mag{1})
	if m.IsZero() {
		return ZERO, nil
	}
	return newInt(-1, m), nil
}

// NewFromSignMagnitude builds an Int from an explicit sign (-1, 0, +1)
// and a big-endian unsigned magnitude. Fails with FormatError if sign
// is outside {-1,0,1}, or if sign is 0 but the magnitude is nonzero.
func NewFromSignMagnitude(sign int, mag []byte) (*Int, error) {
	if sign < -1 || sign > 1 {
		return nil, newFormatError("sign must be -1, 0, or 1, got %d", sign)
	}
	m := nat.FromBytes(mag)
	if sign == 0 && !m.IsZero() {
		return nil, newFormatError("sign 0 requires an all-zero magnitude")
	}
	if m.IsZero() {
		return ZERO, nil
	}
	return newInt(sign, m), nil
}

// ToByteArray renders x as the shortest big-endian two's-complement
// byte slice that round-trips through NewFromBytes, matching the
// source's toByteArray: always at least one byte, and always with
// enough leading bits to make the sign unambiguous.
func (x *Int) ToByteArray() []byte {
	nbits := x.BitLength() + 1
	nbytes := (nbits + 7) / 8
	out := make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		w := x.limbAt(i / 4)
		shift := uint((i % 4) * 8)
		out[nbytes-1-i] = byte(w >> shift)
	}
	return out
}

// IntValue returns the low 32 bits of x's two's-complement
// representation, reinterpreted as a signed int32. Silently truncates
// for values that don't fit; see IntValueExact.
func (x *Int) IntValue() int32 { return int32(x.limbAt(0)) }

// LongValue returns the low 64 bits of x's two's-complement
// representation, reinterpreted as a signed int64. Silently truncates
// for values that don't fit; see LongValueExact.
func (x *Int) LongValue() int64 {
	return int64(uint64(x.limbAt(1))<<32 | uint64(x.limbAt(0)))
}

// IntValueExact returns x as an int32, failing with OutOfRangeError if
// x doesn't fit.
func (x *Int) IntValueExact() (int32, error) {
	if x.BitLength() > 31 {
		return 0, newOutOfRangeError("value does not fit in int32")
	}
	return x.IntValue(), nil
}

// LongValueExact returns x as an int64, failing with OutOfRangeError if
// x doesn't fit.
func (x *Int) LongValueExact() (int64, error) {
	if x.BitLength() > 63 {
		return 0, newOutOfRangeError("value does not fit in int64")
	}
	return x.LongValue(), nil
}

// ShortValueExact returns x as an int16, failing with OutOfRangeError
// if x doesn't fit.
func (x *Int) ShortValueExact() (int16, error) {
	if x.BitLength() > 15 {
		return 0, newOutOfRangeError("value does not fit in int16")
	}
	return int16(x.IntValue()), nil
}

// ByteValueExact returns x as an int8, failing with OutOfRangeError if
// x doesn't fit.
func (x *Int) ByteValueExact() (int8, error) {
	if x.BitLength() > 7 {
		return 0, newOutOfRangeError("value does not fit in int8")
	}
	return int8(x.IntValue()), nil
}

// Float64Value converts x to a float64 via a decimal string round-trip.
// A magnitude beyond float64 range collapses to +Inf or -Inf, matching
// strconv.ParseFloat's own overflow behavior.
func (x *Int) Float64Value() float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}

// Float32Value converts x to a float32 via a decimal string round-trip,
// collapsing out-of-range magnitudes to +Inf or -Inf.
func (x *Int) Float32Value() float32 {
	f, _ := strconv.ParseFloat(x.String(), 32)
	return float32(f)
}
