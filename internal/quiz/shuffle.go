package quiz

import (
	"math/rand"
	"quiz-runner/internal/domain"
	"sync"
	"time"
)

// Shuffle permutes s in place with the Fisher–Yates algorithm: walking from
// the last index down to 1, each element is swapped with one at a uniformly
// chosen index in [0, i].
func Shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffler is a Shuffle source safe for use from timer callbacks and handlers.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler seeded with seed. A zero seed uses the clock.
func NewShuffler(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Questions shuffles qs in place.
func (s *Shuffler) Questions(qs []domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Shuffle(s.rnd, qs)
}

// Options returns a shuffled copy of opts; opts itself is left untouched.
func (s *Shuffler) Options(opts []domain.Option) []domain.Option {
	out := make([]domain.Option, len(opts))
	copy(out, opts)
	s.mu.Lock()
	defer s.mu.Unlock()
	Shuffle(s.rnd, out)
	return out
}
