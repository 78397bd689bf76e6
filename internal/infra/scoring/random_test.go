package scoring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/scoring"
)

func TestScoreLeadStaysInRange(t *testing.T) {
	scorer := scoring.NewRandomScorer(nil)
	lead := &entity.Lead{ID: "lead-123", Email: "john@example.com"}

	for i := 0; i < 1000; i++ {
		score := scorer.ScoreLead(lead)
		assert.GreaterOrEqual(t, score, 1)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestScoreLeadIsDeterministicPerSeed(t *testing.T) {
	lead := &entity.Lead{ID: "lead-123", Email: "john@example.com"}

	a := scoring.NewRandomScorer(rand.NewSource(42))
	b := scoring.NewRandomScorer(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.ScoreLead(lead), b.ScoreLead(lead))
	}
}
