package domain

import "testing"

func TestComplianceScoreDerivesFromViolationCount(t *testing.T) {
	cases := []struct {
		name       string
		violations []ViolationCode
		want       float64
	}{
		{"clean label", nil, 100},
		{"one violation", []ViolationCode{ViolationMissingAddress}, 500.0 / 6.0},
		{"two violations", []ViolationCode{ViolationMissingMRP, ViolationMissingManufactureDate}, 400.0 / 6.0},
		{"all violations", []ViolationCode{
			ViolationMissingMRP,
			ViolationMissingNetQuantity,
			ViolationMissingManufacturer,
			ViolationMissingAddress,
			ViolationMissingManufactureDate,
			ViolationMissingConsumerCare,
		}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComplianceScore(tc.violations)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected score %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCompliantReflectsViolations(t *testing.T) {
	clean := ScanResult{}
	if !clean.Compliant() {
		t.Fatal("expected empty violation set to be compliant")
	}
	dirty := ScanResult{Violations: []ViolationCode{ViolationMissingMRP}}
	if dirty.Compliant() {
		t.Fatal("expected violation set to be non-compliant")
	}
}

func TestRiskTierBoundsAreExclusive(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskTier
	}{
		{0.9, RiskHigh},
		{0.71, RiskHigh},
		{0.7, RiskMedium},
		{0.41, RiskMedium},
		{0.4, RiskLow},
		{0.11, RiskLow},
	}

	for _, tc := range cases {
		got := AnomalyResult{RiskScore: tc.score}.Tier()
		if got != tc.want {
			t.Fatalf("score %v: expected tier %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestMatchVerdictBoundsAreExclusive(t *testing.T) {
	cases := []struct {
		similarity float64
		want       MatchVerdict
	}{
		{0.99, VerdictMatch},
		{0.86, VerdictMatch},
		{0.85, VerdictLikelyMatch},
		{0.71, VerdictLikelyMatch},
		{0.7, VerdictMismatch},
		{0.61, VerdictMismatch},
	}

	for _, tc := range cases {
		got := MatchResult{Similarity: tc.similarity}.Verdict()
		if got != tc.want {
			t.Fatalf("similarity %v: expected verdict %s, got %s", tc.similarity, tc.want, got)
		}
	}
}
