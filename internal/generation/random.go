package generation

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the source of every random choice the generator makes.
// Tests inject a seeded source to get reproducible output.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// LockedRand is a seeded *rand.Rand that is safe for concurrent use.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a LockedRand seeded with seed.
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRand returns a LockedRand seeded from the wall clock.
func NewTimeSeededRand() *LockedRand {
	return NewLockedRand(time.Now().UnixNano())
}

// Intn returns a pseudo-random int in [0, n).
func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Pick returns a uniformly chosen element of items, or "" if items is empty.
func Pick(rng Random, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.Intn(len(items))]
}
