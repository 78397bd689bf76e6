package scoring

import (
	"math/rand"
	"sync"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// RandomScorer is the placeholder scoring model: a uniform draw in [1,100].
// The random source is injected so tests can pin a seed; a real model can
// replace this type without touching the LeadScorer contract.
type RandomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomScorer(src rand.Source) *RandomScorer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &RandomScorer{rng: rand.New(src)}
}

func (s *RandomScorer) ScoreLead(lead *entity.Lead) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(100) + 1
}
