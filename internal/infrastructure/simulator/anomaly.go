package simulator

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// marketplaceSources is always reported in full, regardless of risk.
var marketplaceSources = []string{"amazon.in", "flipkart.com", "meesho.com", "snapdeal.com"}

// anomalyCatalog is ordered; reported anomalies are always a prefix so
// runs with a fixed seed stay reproducible.
var anomalyCatalog = []domain.Anomaly{
	{Type: "price_variance", Detail: "MRP differs by more than 20% between marketplace listings"},
	{Type: "seller_mismatch", Detail: "Listed seller is not an authorized distributor for this brand"},
	{Type: "label_inconsistency", Detail: "Net quantity declaration differs across listings of the same GTIN"},
}

// AnomalySimulator stands in for a real cross-marketplace retrieval
// backend.
type AnomalySimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAnomalySimulator(rng *rand.Rand) *AnomalySimulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AnomalySimulator{rng: rng}
}

func (s *AnomalySimulator) Assess(_ context.Context) (domain.AnomalyResult, error) {
	s.mu.Lock()
	score := 0.1 + s.rng.Float64()*0.9
	count := 1 + s.rng.IntN(3)
	s.mu.Unlock()

	if count > len(anomalyCatalog) {
		count = len(anomalyCatalog)
	}
	return domain.AnomalyResult{
		RiskScore: score,
		Sources:   slices.Clone(marketplaceSources),
		Anomalies: slices.Clone(anomalyCatalog[:count]),
	}, nil
}
