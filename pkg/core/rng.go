package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

// ErrInvalidArgument is returned when a random operation receives input it
// cannot sample from.
var ErrInvalidArgument = errors.New("invalid argument")

// Random is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is not safe for concurrent use; every grid owns its own instance.
type Random struct {
	r    *rand.Rand
	seed int64
}

// NewRandom creates a deterministic source using the provided seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// NewRandomFromString seeds a source from the cyrb53 hash of s.
func NewRandomFromString(s string) *Random {
	return NewRandom(Cyrb53(s, 0))
}

// ParseSeed resolves a user supplied seed. Strings made only of digits are
// used as-is, anything else is hashed with cyrb53.
func ParseSeed(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("parse seed: %w: empty seed", ErrInvalidArgument)
	}
	digits := true
	for _, c := range s {
		if c < '0' || c > '9' {
			digits = false
			break
		}
	}
	if digits {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v, nil
		}
	}
	return Cyrb53(s, 0), nil
}

// Seed reports the seed the source was created with.
func (r *Random) Seed() int64 { return r.seed }

// Int returns a uniform integer in [0, n). It returns 0 when n <= 0.
func (r *Random) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float returns a uniform float in [0, 1).
func (r *Random) Float() float64 {
	return r.r.Float64()
}

// Shuffle permutes n elements through the swap callback.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Pick returns a uniformly chosen element of list.
func Pick[T any](r *Random, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, fmt.Errorf("pick from empty list: %w", ErrInvalidArgument)
	}
	return list[r.Int(len(list))], nil
}
