package bignum

import "github.com/agbruneau/bignum/internal/nat"

// ZERO, ONE, and TEN are shared immutable constants, safe to use from
// any goroutine since every Int is immutable once constructed (spec
// §3 "Lifecycle").
var (
	ZERO = &Int{sign: 0, mag: nil}
	ONE  = &Int{sign: 1, mag: nat.Mag{1}}
	TEN  = &Int{sign: 1, mag: nat.Mag{10}}
)

// smallIntCache holds pre-built Int values for -16..16, mirroring the
// source's small-constant pool: constructors that land in this range
// hand back a shared instance instead of allocating.
var smallIntCache [33]*Int

func init() {
	for i := range smallIntCache {
		v := i - 16
		sign := 0
		var mag nat.Mag
		switch {
		case v > 0:
			sign = 1
			mag = nat.Mag{uint32(v)}
		case v < 0:
			sign = -1
			mag = nat.Mag{uint32(-v)}
		}
		smallIntCache[i] = &Int{sign: sign, mag: mag}
	}
}

func smallInt(v int64) *Int {
	if v >= -16 && v <= 16 {
		return smallIntCache[v+16]
	}
	return nil
}
