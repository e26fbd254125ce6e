package lottery

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform values in [0,1)
type Source interface {
	Float64() float64
}

// lockedSource guards a math/rand generator, which is not safe for
// concurrent use on its own
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a concurrency safe Source seeded from seed.
// A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// FixedSource replays the given rolls in order, then repeats the last one
type FixedSource struct {
	mu    sync.Mutex
	rolls []float64
	next  int
}

// NewFixedSource returns a Source that yields rolls in order
func NewFixedSource(rolls ...float64) *FixedSource {
	return &FixedSource{rolls: rolls}
}

func (s *FixedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rolls) == 0 {
		return 0
	}
	r := s.rolls[s.next]
	if s.next < len(s.rolls)-1 {
		s.next++
	}
	return r
}
