package bignum

import (
	"sync/atomic"

	"github.com/agbruneau/bignum/internal/logging"
	"github.com/agbruneau/bignum/internal/nat"
)

// pkgLogger is the package-wide logger, defaulting to a no-op so the
// library never writes anything unless a caller opts in. Swapped via
// SetLogger; the atomic.Pointer gives safe publication without a mutex
// on every call site that reads it.
var pkgLogger atomic.Pointer[logging.Logger]

func init() {
	var l logging.Logger = noopLogger{}
	pkgLogger.Store(&l)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...logging.Field)          {}
func (noopLogger) Error(string, error, ...logging.Field)  {}
func (noopLogger) Debug(string, ...logging.Field)         {}
func (noopLogger) Printf(string, ...any)                  {}
func (noopLogger) Println(...any)                         {}

// SetLogger installs the logger used for this package's diagnostic
// output (forced-algorithm selection). It is
// safe to call concurrently with in-flight operations; a caller that
// wants every operation logged should call this once at process
// startup.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = noopLogger{}
	}
	pkgLogger.Store(&l)
}

func logger() logging.Logger {
	return *pkgLogger.Load()
}

// MulAlgorithm names one of the multiplication/squaring engines this
// package implements. Forcing a specific engine is how property 2
// (every multiply engine agrees on every input) is exercised: see
// MulWithAlgorithm.
type MulAlgorithm = nat.MulAlgorithm

const (
	MulAuto       = nat.MulAuto
	MulSchoolbook = nat.MulSchoolbook
	MulKaratsuba  = nat.MulKaratsuba
	MulToom3      = nat.MulToom3
	MulSSA        = nat.MulSSA
)

// DivAlgorithm names one of the division engines this package
// implements.
type DivAlgorithm = nat.DivAlgorithm

const (
	DivAuto        = nat.DivAuto
	DivSchoolbook  = nat.DivSchoolbook
	DivBurnikelZiegler = nat.DivBurnikelZiegler
	DivBarrett     = nat.DivBarrett
)
