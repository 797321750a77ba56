package nat

import "golang.org/x/sync/errgroup"

// Toom-Cook-3 multiplication, grounded on BigInteger.java's
// multiplyToomCook3/getToomSlice and spec's description of Bodrato's
// five-point evaluation scheme. Each operand is split into three limbs
// a2,a1,a0 (high to low) of k = ceil(max/3) limbs, evaluated as a degree-2
// polynomial at {0,1,-1,2,inf}, multiplied pointwise, and interpolated
// back with two exact halvings and one exact division by 3.
//
// The five evaluation points, and therefore the interpolation
// coefficients, are signed integers even though every input magnitude is
// unsigned (a0-a1+a2 can be negative), so this file works in a small
// local signed-magnitude type (snat) rather than threading sign flags
// through the unsigned nat helpers.
//
// The five pointwise products (v0, v1, vm1, v2, vinf) depend only on the
// evaluation sums above, not on each other, so they fan out across
// goroutines the same way mulKaratsuba's three sub-products do, using
// golang.org/x/sync/errgroup for the same disciplined, cancellation-free
// shape (none of these five calls can themselves fail).

type snat struct {
	sign int // -1, 0, or +1
	mag  nat
}

func sOf(x nat) snat {
	if x.isZero() {
		return snat{}
	}
	return snat{1, x}
}

func sNeg(a snat) snat {
	if a.sign == 0 {
		return a
	}
	return snat{-a.sign, a.mag}
}

func sAdd(a, b snat) snat {
	if a.sign == 0 {
		return b
	}
	if b.sign == 0 {
		return a
	}
	if a.sign == b.sign {
		return snat{a.sign, add(a.mag, b.mag)}
	}
	c := valCmp(a.mag, b.mag)
	switch {
	case c == 0:
		return snat{}
	case c > 0:
		return snat{a.sign, subVal(a.mag, b.mag)}
	default:
		return snat{b.sign, subVal(b.mag, a.mag)}
	}
}

func sSub(a, b snat) snat { return sAdd(a, sNeg(b)) }

func sMul(a, b snat) snat {
	if a.sign == 0 || b.sign == 0 {
		return snat{}
	}
	return snat{a.sign * b.sign, mul(a.mag, b.mag)}
}

func sMulSmall(a snat, w Word) snat {
	if a.sign == 0 || w == 0 {
		return snat{}
	}
	return snat{a.sign, mulByWord(a.mag, w)}
}

func sShiftLeft(a snat, n int) snat {
	if a.sign == 0 || n == 0 {
		return a
	}
	return snat{a.sign, shiftLeftBits(a.mag, n)}
}

// sDivSmallExact divides a by the small constant w, which must divide a
// exactly (as Bodrato's scheme guarantees for the two halvings and the
// division by three it performs).
func sDivSmallExact(a snat, w Word) snat {
	if a.sign == 0 {
		return a
	}
	q, _ := divWord(a.mag, w)
	return snat{a.sign, q}
}

// splitToom3 splits v into three k-limb-or-shorter pieces, high to low.
func splitToom3(v nat, k int) (a2, a1, a0 nat) {
	n := len(v)
	switch {
	case n <= k:
		return nil, nil, v
	case n <= 2*k:
		return nil, v[:n-k], v[n-k:]
	default:
		return v[:n-2*k], v[n-2*k : n-k], v[n-k:]
	}
}

func mulToom3(x, y nat) nat {
	k := ceilDiv(maxInt(len(x), len(y)), 3)
	if k == 0 {
		return mulBasic(x, y)
	}

	xa2, xa1, xa0 := splitToom3(x, k)
	yb2, yb1, yb0 := splitToom3(y, k)
	a0, a1, a2 := sOf(xa0), sOf(xa1), sOf(xa2)
	b0, b1, b2 := sOf(yb0), sOf(yb1), sOf(yb2)

	sa1 := sAdd(sAdd(a0, a1), a2)            // a0+a1+a2
	sb1 := sAdd(sAdd(b0, b1), b2)            // b0+b1+b2
	saM1 := sAdd(sSub(a0, a1), a2)            // a0-a1+a2
	sbM1 := sAdd(sSub(b0, b1), b2)            // b0-b1+b2
	sa2pt := sAdd(sAdd(a0, sMulSmall(a1, 2)), sMulSmall(a2, 4)) // a0+2a1+4a2
	sb2pt := sAdd(sAdd(b0, sMulSmall(b1, 2)), sMulSmall(b2, 4)) // b0+2b1+4b2

	var v0, v1, vm1, v2, vinf snat
	var g errgroup.Group
	g.Go(func() error { v0 = sMul(a0, b0); return nil })
	g.Go(func() error { v1 = sMul(sa1, sb1); return nil })
	g.Go(func() error { vm1 = sMul(saM1, sbM1); return nil })
	g.Go(func() error { v2 = sMul(sa2pt, sb2pt); return nil })
	g.Go(func() error { vinf = sMul(a2, b2); return nil })
	_ = g.Wait()

	// Bodrato's interpolation, ported from BigInteger.java's
	// multiplyToomCook3 correction sequence rather than re-derived: each
	// step below feeds the next, so the naming mirrors the source
	// exactly instead of collapsing into a single closed-form expression.
	t2 := sDivSmallExact(sSub(v2, vm1), 3)
	tm1 := sDivSmallExact(sSub(v1, vm1), 2)
	t1 := sSub(v1, v0)
	t2 = sDivSmallExact(sSub(t2, t1), 2)
	t1 = sSub(sSub(t1, tm1), vinf)
	t2 = sSub(t2, sMulSmall(vinf, 2))
	tm1 = sSub(tm1, t2)

	c0 := v0
	c1 := tm1
	c2 := t1
	c3 := t2
	c4 := vinf

	acc := c0
	acc = sAdd(acc, sShiftLeft(c1, 32*k))
	acc = sAdd(acc, sShiftLeft(c2, 64*k))
	acc = sAdd(acc, sShiftLeft(c3, 96*k))
	acc = sAdd(acc, sShiftLeft(c4, 128*k))

	if acc.sign <= 0 {
		return nil
	}
	return norm(acc.mag)
}
