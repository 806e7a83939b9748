package simulator

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

func TestScanRecomputesComplianceScore(t *testing.T) {
	s := NewScanSimulator(rand.New(rand.NewPCG(1, 1)))

	for i := 0; i < 50; i++ {
		result, err := s.Scan(context.Background())
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		want := domain.ComplianceScore(result.Violations)
		if result.ComplianceScore != want {
			t.Fatalf("score %v does not match violation count %d (want %v)", result.ComplianceScore, len(result.Violations), want)
		}
		if result.ProductName == "" || result.GTIN == "" {
			t.Fatalf("catalog entry missing identity fields: %+v", result)
		}
	}
}

func TestScanDoesNotShareViolationSlices(t *testing.T) {
	s := NewScanSimulator(rand.New(rand.NewPCG(2, 2)))

	for i := 0; i < 50; i++ {
		result, err := s.Scan(context.Background())
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if len(result.Violations) == 0 {
			continue
		}
		result.Violations[0] = "tampered"
		again, _ := s.Scan(context.Background())
		for _, violation := range again.Violations {
			if violation == "tampered" {
				t.Fatal("violation slice is shared with the catalog")
			}
		}
		return
	}
	t.Fatal("never drew a catalog entry with violations")
}

func TestAssessStaysWithinBounds(t *testing.T) {
	s := NewAnomalySimulator(rand.New(rand.NewPCG(3, 3)))

	for i := 0; i < 200; i++ {
		result, err := s.Assess(context.Background())
		if err != nil {
			t.Fatalf("assess: %v", err)
		}
		if result.RiskScore <= 0.1 || result.RiskScore >= 1.0 {
			t.Fatalf("risk score %v outside (0.1, 1.0)", result.RiskScore)
		}
		if len(result.Anomalies) < 1 || len(result.Anomalies) > len(anomalyCatalog) {
			t.Fatalf("anomaly count %d outside catalog bounds", len(result.Anomalies))
		}
		if len(result.Sources) != len(marketplaceSources) {
			t.Fatalf("expected all %d sources, got %d", len(marketplaceSources), len(result.Sources))
		}
	}
}

func TestAssessReportsCatalogPrefix(t *testing.T) {
	s := NewAnomalySimulator(rand.New(rand.NewPCG(4, 4)))

	for i := 0; i < 100; i++ {
		result, err := s.Assess(context.Background())
		if err != nil {
			t.Fatalf("assess: %v", err)
		}
		for j, anomaly := range result.Anomalies {
			if anomaly != anomalyCatalog[j] {
				t.Fatalf("anomaly %d is %+v, want catalog prefix entry %+v", j, anomaly, anomalyCatalog[j])
			}
		}
	}
}

func TestCompareStaysWithinBounds(t *testing.T) {
	s := NewMatchSimulator(rand.New(rand.NewPCG(5, 5)))

	known := map[domain.FlagCode]bool{
		domain.FlagLogoMismatch:        true,
		domain.FlagColorVariation:      true,
		domain.FlagPackagingDifference: true,
		domain.FlagFontInconsistency:   true,
	}

	for i := 0; i < 200; i++ {
		result, err := s.Compare(context.Background())
		if err != nil {
			t.Fatalf("compare: %v", err)
		}
		if result.Similarity <= 0.6 || result.Similarity >= 1.0 {
			t.Fatalf("similarity %v outside (0.6, 1.0)", result.Similarity)
		}
		seen := make(map[domain.FlagCode]bool)
		for _, flag := range result.Flags {
			if !known[flag] {
				t.Fatalf("unknown flag %s", flag)
			}
			if seen[flag] {
				t.Fatalf("duplicate flag %s", flag)
			}
			seen[flag] = true
		}
	}
}
