package usecase

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

func newTestComposer() *ResponseComposer {
	return NewResponseComposer(rand.New(rand.NewPCG(1, 2)))
}

func TestComposerMessageKinds(t *testing.T) {
	composer := newTestComposer()

	cases := []struct {
		name string
		msg  domain.Message
		want domain.MessageKind
	}{
		{"greeting", composer.Greeting(), domain.KindNormal},
		{"scan", composer.Scan(domain.ScanResult{ProductName: "Herbal Green Tea"}), domain.KindOCR},
		{"anomaly", composer.Anomaly(domain.AnomalyResult{RiskScore: 0.5}), domain.KindAnomaly},
		{"image match", composer.ImageMatch(domain.MatchResult{Similarity: 0.9}), domain.KindCV},
		{"complaint", composer.Complaint(domain.ComplaintRecord{ID: "CPL-2026-AB12CD"}), domain.KindComplaint},
		{"legal", composer.Legal(), domain.KindLegal},
		{"barcode", composer.Barcode(), domain.KindBarcode},
		{"general", composer.General(), domain.KindNormal},
		{"apology", composer.Apology(), domain.KindNormal},
		{"upload analysis", composer.UploadAnalysis(domain.ScanResult{}, domain.AnomalyResult{}), domain.KindScan},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.msg.Kind != tc.want {
				t.Fatalf("expected kind %s, got %s", tc.want, tc.msg.Kind)
			}
			if tc.msg.Sender != domain.SenderBot {
				t.Fatalf("expected bot sender, got %s", tc.msg.Sender)
			}
			if tc.msg.ID == "" {
				t.Fatal("expected message id to be set")
			}
			if tc.msg.Timestamp.IsZero() {
				t.Fatal("expected timestamp to be set")
			}
		})
	}
}

func TestGeneralDrawsFromFallbackPool(t *testing.T) {
	composer := newTestComposer()
	for i := 0; i < 20; i++ {
		msg := composer.General()
		if !slices.Contains(generalFallbacks, msg.Text) {
			t.Fatalf("general reply %q is not one of the canned fallbacks", msg.Text)
		}
	}
}

func TestScanMessageReportsViolations(t *testing.T) {
	composer := newTestComposer()
	result := domain.ScanResult{
		ProductName: "Power Bank 10000mAh",
		GTIN:        "8904321098765",
		Violations: []domain.ViolationCode{
			domain.ViolationMissingMRP,
			domain.ViolationMissingManufactureDate,
		},
		ComplianceScore: domain.ComplianceScore([]domain.ViolationCode{domain.ViolationMissingMRP, domain.ViolationMissingManufactureDate}),
	}

	msg := composer.Scan(result)
	if !strings.Contains(msg.Text, "missing mrp") {
		t.Fatalf("expected violation listing in reply, got %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "67%") {
		t.Fatalf("expected rounded compliance score in reply, got %q", msg.Text)
	}
	payload, ok := msg.Payload.(domain.ScanResult)
	if !ok {
		t.Fatalf("expected scan result payload, got %T", msg.Payload)
	}
	if payload.GTIN != result.GTIN {
		t.Fatalf("expected payload GTIN %s, got %s", result.GTIN, payload.GTIN)
	}
}

func TestUploadAnalysisRecommendation(t *testing.T) {
	composer := newTestComposer()

	clean := composer.UploadAnalysis(domain.ScanResult{ComplianceScore: 100}, domain.AnomalyResult{RiskScore: 0.2})
	cleanPayload := clean.Payload.(domain.UploadAnalysis)
	if strings.Contains(cleanPayload.Recommendation, "non-compliant") {
		t.Fatalf("compliant scan should not recommend a complaint, got %q", cleanPayload.Recommendation)
	}

	dirtyScan := domain.ScanResult{Violations: []domain.ViolationCode{domain.ViolationMissingAddress}}
	dirty := composer.UploadAnalysis(dirtyScan, domain.AnomalyResult{RiskScore: 0.9})
	dirtyPayload := dirty.Payload.(domain.UploadAnalysis)
	if dirtyPayload.Recommendation != "This product is non-compliant, consider filing a complaint." {
		t.Fatalf("unexpected recommendation %q", dirtyPayload.Recommendation)
	}
	if !strings.Contains(dirty.Text, string(domain.RiskHigh)) {
		t.Fatalf("expected risk tier in combined message, got %q", dirty.Text)
	}
}
