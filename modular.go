package bignum

import "github.com/agbruneau/bignum/internal/nat"

// Mod returns x mod m, always in [0,m). Fails with DomainError if m is
// not positive; unlike Rem, the result is never negative.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, newDomainError("modulus must be positive")
	}
	r := nat.Mod(x.mag, m.mag)
	if x.sign >= 0 {
		return newInt(1, r), nil
	}
	if len(r) == 0 {
		return ZERO, nil
	}
	return newInt(1, nat.Sub(m.mag, r)), nil
}

// ModPow returns x^exp mod m. A negative exponent is permitted when x
// is invertible mod m: it is computed for |exp| against x's inverse.
// Fails with DomainError if m is not positive, or NotInvertibleError if
// exp is negative and x has no inverse mod m.
func (x *Int) ModPow(exp, m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, newDomainError("modulus must be positive")
	}
	base := x
	e := exp
	if exp.sign < 0 {
		inv, err := x.ModInverse(m)
		if err != nil {
			return nil, err
		}
		base = inv
		e = exp.Neg()
	}
	normBase, err := base.Mod(m)
	if err != nil {
		return nil, err
	}
	r := nat.ModPow(normBase.mag, e.mag, m.mag)
	if len(r) == 0 {
		return ZERO, nil
	}
	return newInt(1, r), nil
}

// ModInverse returns x^-1 mod m. Fails with DomainError if m is not
// positive, or NotInvertibleError if gcd(x,m) != 1.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, newDomainError("modulus must be positive")
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	inv, ok := nat.ModInverse(base.mag, m.mag)
	if !ok {
		return nil, newNotInvertibleError("no inverse for given value mod modulus")
	}
	if len(inv) == 0 {
		return ZERO, nil
	}
	return newInt(1, inv), nil
}

// GCD returns the non-negative greatest common divisor of x and y.
// GCD(0,0) is 0.
func (x *Int) GCD(y *Int) *Int {
	g := nat.GCD(x.mag, y.mag)
	if len(g) == 0 {
		return ZERO
	}
	return newInt(1, g)
}
