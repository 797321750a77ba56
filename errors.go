package bignum

import "fmt"

// The four error kinds this package raises (spec §7). Each is a plain
// struct implementing error, in the style of the teacher's apperrors
// package, rather than a single enum-tagged error type: callers that
// care can errors.As for the specific kind without a type switch on a
// string code.

// DomainError reports an argument outside the operation's valid domain,
// e.g. a negative bit length or a shift distance of math.MinInt32.
type DomainError struct {
	Message string
}

func (e DomainError) Error() string { return e.Message }

func newDomainError(format string, a ...any) error {
	return DomainError{Message: fmt.Sprintf(format, a...)}
}

// FormatError reports malformed textual or binary input: an empty byte
// array, an empty digit string, a bad digit for the given radix, or a
// radix outside [2,36].
type FormatError struct {
	Message string
}

func (e FormatError) Error() string { return e.Message }

func newFormatError(format string, a ...any) error {
	return FormatError{Message: fmt.Sprintf(format, a...)}
}

// NotInvertibleError reports that a value has no modular inverse for
// the requested modulus, i.e. gcd(a,m) != 1.
type NotInvertibleError struct {
	Message string
}

func (e NotInvertibleError) Error() string { return e.Message }

func newNotInvertibleError(format string, a ...any) error {
	return NotInvertibleError{Message: fmt.Sprintf(format, a...)}
}

// OutOfRangeError reports that a value does not fit in the requested
// fixed-width output type (intValueExact and friends).
type OutOfRangeError struct {
	Message string
}

func (e OutOfRangeError) Error() string { return e.Message }

func newOutOfRangeError(format string, a ...any) error {
	return OutOfRangeError{Message: fmt.Sprintf(format, a...)}
}
