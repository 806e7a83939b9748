package simulator

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// matchFlagThresholds lists each possible flag with the draw threshold
// it must exceed to be reported. Untriggered flags are omitted.
var matchFlagThresholds = []struct {
	flag      domain.FlagCode
	threshold float64
}{
	{domain.FlagLogoMismatch, 0.7},
	{domain.FlagColorVariation, 0.6},
	{domain.FlagPackagingDifference, 0.8},
	{domain.FlagFontInconsistency, 0.5},
}

// MatchSimulator stands in for a real computer-vision similarity
// backend.
type MatchSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMatchSimulator(rng *rand.Rand) *MatchSimulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MatchSimulator{rng: rng}
}

func (s *MatchSimulator) Compare(_ context.Context) (domain.MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := domain.MatchResult{
		Similarity: 0.6 + s.rng.Float64()*0.4,
	}
	for _, entry := range matchFlagThresholds {
		if s.rng.Float64() > entry.threshold {
			result.Flags = append(result.Flags, entry.flag)
		}
	}
	return result, nil
}
