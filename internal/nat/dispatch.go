package nat

// Dispatch thresholds are part of the contract (spec's design notes): the
// piecewise tables below encode which algorithm kicks in at which size,
// and callers needing differential testing (property 2: every multiply
// engine must agree on every input) force a specific algorithm via
// MulAlgorithm / DivAlgorithm rather than by fighting the thresholds.

// MulAlgorithm names one of the multiply/square engines this package
// implements, for forcing a specific engine during differential testing.
type MulAlgorithm int

const (
	MulAuto MulAlgorithm = iota
	MulSchoolbook
	MulKaratsuba
	MulToom3
	MulSSA
)

// DivAlgorithm names one of the division engines.
type DivAlgorithm int

const (
	DivAuto DivAlgorithm = iota
	DivSchoolbook
	DivBurnikelZiegler
	DivBarrett
)

const (
	karatsubaLimbThreshold = 50
	toom3LimbThreshold     = 75

	burnikelZieglerLimbThreshold = 50
)

// ssaRange is one entry of a piecewise bit-length table: SS is used for
// bit lengths in [lo, hi).
type ssaRange struct {
	lo, hi int
	use    bool
}

// ssaMultiplyTable is spec's exact Schönhage-Strassen crossover table for
// multiplication. The breakpoints are correctness-relevant (differential
// tests select engines by forcing them directly), but the table is kept
// in one place so it can be re-tuned without touching dispatch logic.
var ssaMultiplyTable = []ssaRange{
	{0, 247000, false},
	{247000, 262144, true},
	{262144, 422000, false},
	{422000, 524288, true},
	{524288, 701000, false},
	{701000, 1048576, true},
	{1048576, 1249000, false},
	{1249000, -1, true},
}

// ssaSquareTable is the analogous table for squaring, with lower
// breakpoints starting at 128,000 bits.
var ssaSquareTable = []ssaRange{
	{0, 128000, false},
	{128000, 200000, true},
	{200000, 340000, false},
	{340000, 450000, true},
	{450000, 600000, false},
	{600000, 900000, true},
	{900000, 1100000, false},
	{1100000, -1, true},
}

func useSSA(bitLen int, table []ssaRange) bool {
	for _, r := range table {
		if bitLen >= r.lo && (r.hi < 0 || bitLen < r.hi) {
			return r.use
		}
	}
	return false
}

// mul dispatches x*y to the appropriate engine based on operand size.
func mul(x, y nat) nat {
	return mulAlgo(x, y, MulAuto)
}

func mulAlgo(x, y nat, forced MulAlgorithm) nat {
	if x.isZero() || y.isZero() {
		return nil
	}
	if len(x) == 1 {
		return mulByWord(y, x[0])
	}
	if len(y) == 1 {
		return mulByWord(x, y[0])
	}

	switch forced {
	case MulSchoolbook:
		return mulBasic(x, y)
	case MulKaratsuba:
		return mulKaratsuba(x, y)
	case MulToom3:
		return mulToom3(x, y)
	case MulSSA:
		return multiplySSA(x, y)
	}

	minLen := minInt(len(x), len(y))
	maxBits := maxInt(x.bitLen(), y.bitLen())
	switch {
	case minLen < karatsubaLimbThreshold:
		return mulBasic(x, y)
	case minLen < toom3LimbThreshold:
		return mulKaratsuba(x, y)
	case useSSA(maxBits, ssaMultiplyTable):
		return multiplySSA(x, y)
	default:
		return mulToom3(x, y)
	}
}

// square dispatches x*x to the appropriate engine based on operand size.
func square(x nat) nat {
	return squareAlgo(x, MulAuto)
}

func squareAlgo(x nat, forced MulAlgorithm) nat {
	if x.isZero() {
		return nil
	}
	if len(x) == 1 {
		return mulByWord(x, x[0])
	}

	switch forced {
	case MulSchoolbook:
		return squareBasic(x)
	case MulKaratsuba:
		return squareKaratsuba(x)
	case MulToom3:
		return mulToom3(x, x)
	case MulSSA:
		return squareSSA(x)
	}

	bitLen := x.bitLen()
	switch {
	case len(x) < karatsubaLimbThreshold:
		return squareBasic(x)
	case len(x) < toom3LimbThreshold:
		return squareKaratsuba(x)
	case useSSA(bitLen, ssaSquareTable):
		return squareSSA(x)
	default:
		return mulToom3(x, x)
	}
}

// div dispatches dividend/divisor to the appropriate division engine.
func div(x, y nat) (q, r nat) {
	return divAlgo(x, y, DivAuto)
}

func divAlgo(x, y nat, forced DivAlgorithm) (q, r nat) {
	switch forced {
	case DivSchoolbook:
		return divKnuth(x, y)
	case DivBurnikelZiegler:
		return divBurnikelZiegler(x, y)
	case DivBarrett:
		return divBarrett(x, y)
	}

	if len(x) < burnikelZieglerLimbThreshold || len(y) < burnikelZieglerLimbThreshold {
		return divKnuth(x, y)
	}
	if useBarrett(maxInt(x.bitLen(), y.bitLen())) {
		return divBarrett(x, y)
	}
	return divBurnikelZiegler(x, y)
}

// barrettTable is spec's exact Barrett crossover table, in bits.
var barrettTable = []ssaRange{
	{0, 3300000, false},
	{3300000, 4100000, true},
	{4100000, 5900000, false},
	{5900000, 8300000, true},
	{8300000, 9700000, false},
	{9700000, 16000000, true},
	{16000000, 19000000, false},
	{19000000, -1, true},
}

func useBarrett(bitLen int) bool {
	return useSSA(bitLen, barrettTable)
}
