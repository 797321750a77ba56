package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt produces an arbitrary Int from a random byte slice, using the
// slice's own leading byte to pick a sign so a single generator covers
// both positive and negative values without a second gopter generator.
func genInt() gopter.Gen {
	return gen.SliceOf(gen.UInt8Range(0, 255)).Map(func(b []byte) *Int {
		n, err := NewFromBytes(append([]byte{0}, b...))
		if err != nil {
			return ZERO
		}
		if len(b) > 0 && b[0]%2 == 1 {
			return n.Neg()
		}
		return n
	})
}

func defaultIntParams(n int) *gopter.TestParameters {
	p := gopter.DefaultTestParameters()
	p.MinSuccessfulTests = n
	return p
}

func toBigInt(x *Int) *big.Int {
	b, _ := new(big.Int).SetString(x.String(), 10)
	return b
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("a+b == b+a", prop.ForAll(
		func(a, b *Int) bool { return a.Add(b).Equal(b.Add(a)) },
		genInt(), genInt(),
	))
	properties.Property("(a+b)+c == a+(b+c)", prop.ForAll(
		func(a, b, c *Int) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		genInt(), genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestAddSubInverse(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("(a+b)-b == a", prop.ForAll(
		func(a, b *Int) bool { return a.Add(b).Sub(b).Equal(a) },
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestMulMatchesMathBig(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("Mul agrees with math/big", prop.ForAll(
		func(a, b *Int) bool {
			want := new(big.Int).Mul(toBigInt(a), toBigInt(b))
			return toBigInt(a.Mul(b)).Cmp(want) == 0
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestMultiplyEnginesAgree(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(100))
	algos := []MulAlgorithm{MulSchoolbook, MulKaratsuba, MulToom3, MulSSA}
	properties.Property("every forced multiply engine agrees with Mul", prop.ForAll(
		func(a, b *Int) bool {
			want := a.Mul(b)
			for _, alg := range algos {
				if !a.MulWithAlgorithm(b, alg).Equal(want) {
					return false
				}
			}
			return true
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestDivModContract(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("x == q*y+r and |r| < |y|", prop.ForAll(
		func(a, b *Int) bool {
			if b.IsZero() {
				return true
			}
			q, r, err := a.DivMod(b)
			if err != nil {
				return false
			}
			if r.CmpAbs(b) >= 0 {
				return false
			}
			return q.Mul(b).Add(r).Equal(a)
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestDivisionEnginesAgree(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(100))
	algos := []DivAlgorithm{DivSchoolbook, DivBurnikelZiegler, DivBarrett}
	properties.Property("every forced division engine agrees with DivMod", prop.ForAll(
		func(a, b *Int) bool {
			if b.IsZero() {
				return true
			}
			wantQ, wantR, _ := a.DivMod(b)
			for _, alg := range algos {
				gotQ, gotR, err := a.DivModWithAlgorithm(b, alg)
				if err != nil || !gotQ.Equal(wantQ) || !gotR.Equal(wantR) {
					return false
				}
			}
			return true
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestModPowLaws(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(100))
	properties.Property("x^0 mod m == 1 for m > 1", prop.ForAll(
		func(x, m *Int) bool {
			m = m.Abs().Add(ONE).Add(ONE)
			got, err := x.ModPow(ZERO, m)
			return err == nil && got.Equal(ONE)
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestGCDDividesBoth(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("gcd(a,b) divides both", prop.ForAll(
		func(a, b *Int) bool {
			if a.IsZero() && b.IsZero() {
				return true
			}
			g := a.GCD(b)
			if g.IsZero() {
				return false
			}
			_, ra, _ := a.DivMod(g)
			_, rb, _ := b.DivMod(g)
			return ra.IsZero() && rb.IsZero()
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestBitwiseDeMorgan(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("^(a&b) == ^a | ^b", prop.ForAll(
		func(a, b *Int) bool {
			return a.And(b).Not().Equal(a.Not().Or(b.Not()))
		},
		genInt(), genInt(),
	))
	properties.TestingRun(t)
}

func TestShiftRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("ShiftRight(ShiftLeft(x,n),n) == x", prop.ForAll(
		func(a *Int, n uint8) bool {
			shifted, err := a.ShiftLeft(int32(n))
			if err != nil {
				return false
			}
			back, err := shifted.ShiftRight(int32(n))
			return err == nil && back.Equal(a)
		},
		genInt(), gen.UInt8Range(0, 64),
	))
	properties.TestingRun(t)
}

func TestStringRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(defaultIntParams(150))
	properties.Property("FromString(x.String()) == x", prop.ForAll(
		func(a *Int) bool {
			back, err := FromString(a.String(), 10)
			return err == nil && back.Equal(a)
		},
		genInt(),
	))
	properties.Property("NewFromBytes(x.ToByteArray()) == x", prop.ForAll(
		func(a *Int) bool {
			back, err := NewFromBytes(a.ToByteArray())
			return err == nil && back.Equal(a)
		},
		genInt(),
	))
	properties.TestingRun(t)
}
