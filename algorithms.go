package bignum

import (
	"fmt"

	"github.com/agbruneau/bignum/internal/logging"
	"github.com/agbruneau/bignum/internal/nat"
)

// MulWithAlgorithm computes x*y using a specific multiply engine instead
// of the size-based dispatcher. Intended for differential testing: every
// engine must agree on every input (spec §8 property 2).
func (x *Int) MulWithAlgorithm(y *Int, alg MulAlgorithm) *Int {
	if x.sign == 0 || y.sign == 0 {
		return ZERO
	}
	logger().Debug("forced multiply", logging.String("algorithm", fmt.Sprintf("%v", alg)))
	return newInt(x.sign*y.sign, nat.MulForced(x.mag, y.mag, alg))
}

// SquareWithAlgorithm computes x*x using a specific engine instead of
// the size-based dispatcher.
func (x *Int) SquareWithAlgorithm(alg MulAlgorithm) *Int {
	if x.sign == 0 {
		return ZERO
	}
	logger().Debug("forced square", logging.String("algorithm", fmt.Sprintf("%v", alg)))
	return newInt(1, nat.SquareForced(x.mag, alg))
}

// DivModWithAlgorithm computes x/y using a specific division engine
// instead of the size-based dispatcher.
func (x *Int) DivModWithAlgorithm(y *Int, alg DivAlgorithm) (q, r *Int, err error) {
	if y.sign == 0 {
		return nil, nil, newDomainError("division by zero")
	}
	if x.sign == 0 {
		return ZERO, ZERO, nil
	}
	logger().Debug("forced divide", logging.String("algorithm", fmt.Sprintf("%v", alg)))
	qm, rm := nat.DivModForced(x.mag, y.mag, alg)
	return newInt(x.sign*y.sign, qm), newInt(x.sign, rm), nil
}
