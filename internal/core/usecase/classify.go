package usecase

import (
	"strings"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// intentRules are evaluated in priority order so a message matching
// several categories resolves deterministically to the first hit.
var intentRules = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentComplaint, []string{"complaint", "complain", "raise", "file", "report", "fake", "defective"}},
	{domain.IntentScan, []string{"scan", "ocr", "extract"}},
	{domain.IntentAnomaly, []string{"anomaly", "marketplace", "cross", "compare"}},
	{domain.IntentImageMatch, []string{"cv", "image", "similarity", "match", "compare images"}},
	{domain.IntentLegal, []string{"legal", "metrology", "rules", "compliance", "comply", "mrp", "packaging", "label"}},
	{domain.IntentBarcode, []string{"barcode", "gtin", "ean", "asin"}},
}

// ClassifyIntent maps free text to an intent by case-insensitive
// substring match. "compliance" and "comply" route to the legal intent,
// not the scanner; that ordering is part of the contract.
func ClassifyIntent(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return domain.IntentGeneral
}
