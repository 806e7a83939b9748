package domain

type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// Anomaly is one cross-marketplace inconsistency found for a product.
type Anomaly struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// AnomalyResult is a cross-marketplace risk assessment.
type AnomalyResult struct {
	RiskScore float64   `json:"risk_score"`
	Sources   []string  `json:"sources"`
	Anomalies []Anomaly `json:"anomalies"`
}

// Tier derives the qualitative risk bucket from the continuous score.
func (r AnomalyResult) Tier() RiskTier {
	switch {
	case r.RiskScore > 0.7:
		return RiskHigh
	case r.RiskScore > 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}
