package simulator

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// productCatalog holds the canned label profiles the scanner draws from.
// Scores are never read from here; they are recomputed per scan.
var productCatalog = []domain.ScanResult{
	{
		ProductName:     "Organic Face Cream - Natural Glow",
		GTIN:            "8901234567890",
		MRP:             "₹899",
		NetQuantity:     "50ml",
		Manufacturer:    "NatureCare Pvt Ltd",
		Address:         "Plot 14, MIDC, Andheri East, Mumbai 400093",
		ManufactureDate: "2024-01-15",
		ConsumerCare:    "care@naturecare.in / 1800-209-4455",
	},
	{
		ProductName:     "Herbal Green Tea",
		GTIN:            "8906012340017",
		MRP:             "₹245",
		NetQuantity:     "100g",
		Manufacturer:    "Valley Leaf Beverages",
		Address:         "",
		ManufactureDate: "2024-03-02",
		ConsumerCare:    "support@valleyleaf.in",
		Violations:      []domain.ViolationCode{domain.ViolationMissingAddress},
	},
	{
		ProductName:     "Power Bank 10000mAh",
		GTIN:            "8904321098765",
		MRP:             "",
		NetQuantity:     "1 unit",
		Manufacturer:    "Voltacore Electronics",
		Address:         "B-22 Industrial Estate, Noida 201301",
		ManufactureDate: "",
		ConsumerCare:    "1800-532-7788",
		Violations: []domain.ViolationCode{
			domain.ViolationMissingMRP,
			domain.ViolationMissingManufactureDate,
		},
	},
	{
		ProductName:     "Premium Basmati Rice",
		GTIN:            "8902233445566",
		MRP:             "₹640",
		NetQuantity:     "",
		Manufacturer:    "",
		Address:         "Sonipat, Haryana 131001",
		ManufactureDate: "2024-02-20",
		ConsumerCare:    "",
		Violations: []domain.ViolationCode{
			domain.ViolationMissingNetQuantity,
			domain.ViolationMissingManufacturer,
			domain.ViolationMissingConsumerCare,
		},
	},
}

// ScanSimulator stands in for a real OCR label-extraction backend.
type ScanSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScanSimulator(rng *rand.Rand) *ScanSimulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ScanSimulator{rng: rng}
}

// Scan picks a catalog profile uniformly and returns it with the
// compliance score recomputed from its violation set.
func (s *ScanSimulator) Scan(_ context.Context) (domain.ScanResult, error) {
	s.mu.Lock()
	result := productCatalog[s.rng.IntN(len(productCatalog))]
	s.mu.Unlock()

	result.Violations = slices.Clone(result.Violations)
	result.ComplianceScore = domain.ComplianceScore(result.Violations)
	return result, nil
}
