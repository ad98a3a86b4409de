// Package randutil provides bounded random primitives over a shared source.
//
// A Rand is safe for concurrent use. Seeded instances produce the same
// sequence for the same call order, which keeps test runs reproducible.
package randutil

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
	"unicode"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrEmptyPool    = errors.New("empty character pool")
)

// Rand is a mutex-guarded math/rand/v2 generator.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func NewTimeSeeded() *Rand {
	return New(time.Now().UnixNano())
}

func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *Rand) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Int64()
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Read fills p with random bytes.
func (r *Rand) Read(p []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < len(p); i += 8 {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
}

// RandomInt returns a value in [min, max).
func (r *Rand) RandomInt(min, max int) (int, error) {
	v, err := r.RandomInt64(int64(min), int64(max))
	return int(v), err
}

// RandomInt64 returns a value in [min, max).
func (r *Rand) RandomInt64(min, max int64) (int64, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: min (%d) must be less than max (%d)", ErrInvalidRange, min, max)
	}
	span := max - min
	if span <= 0 {
		return 0, fmt.Errorf("%w: span of [%d, %d) overflows", ErrInvalidRange, min, max)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Int64N(span), nil
}

// RandomFloat returns a value in [min, max).
func (r *Rand) RandomFloat(min, max float64) (float64, error) {
	if !(min < max) {
		return 0, fmt.Errorf("%w: min (%g) must be less than max (%g)", ErrInvalidRange, min, max)
	}
	return min + r.Float64()*(max-min), nil
}

// RandomString returns n runes drawn uniformly from pool.
func (r *Rand) RandomString(n int, pool []rune) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidRange, n)
	}
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	out := make([]rune, n)
	r.mu.Lock()
	for i := range out {
		out[i] = pool[r.rng.IntN(len(pool))]
	}
	r.mu.Unlock()
	return string(out), nil
}

// RunePool collects the runes in [lo, hi) accepted by keep. A nil keep accepts all.
func RunePool(lo, hi rune, keep func(rune) bool) []rune {
	pool := make([]rune, 0, max(0, int(hi-lo)))
	for c := lo; c < hi; c++ {
		if keep == nil || keep(c) {
			pool = append(pool, c)
		}
	}
	return pool
}

var (
	// Letters are the ASCII letters found between code points 5 and 128.
	Letters = RunePool(5, 129, unicode.IsLetter)
	Digits  = RunePool('0', '9'+1, nil)
	// Hanzi covers the CJK unified ideographs block used for Chinese text.
	Hanzi = RunePool(0x4e00, 0x9fa5+1, nil)
)
