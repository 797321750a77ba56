package bignum

import (
	"crypto/rand"
	"io"
	"sync"
)

// defaultRNG is the lazily-initialized, process-wide secure random
// source used by every primality/generation entry point that isn't
// handed an explicit io.Reader (spec §5, §9 "RNG plumbing"). sync.Once
// gives the exact "benign race, one final winner" guarantee the source
// tolerates via a simpler unsynchronized double-check, with the added
// benefit of actually being race-free.
var (
	defaultRNGOnce sync.Once
	defaultRNGVal  io.Reader
)

func defaultRNG() io.Reader {
	defaultRNGOnce.Do(func() {
		defaultRNGVal = rand.Reader
	})
	return defaultRNGVal
}

func rngOrDefault(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return defaultRNG()
}
