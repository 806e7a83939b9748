package domain

// ViolationCode names a mandatory label declaration that failed the check.
// Codes reference the modeled declaration fields only.
type ViolationCode string

const (
	ViolationMissingMRP             ViolationCode = "missing_mrp"
	ViolationMissingNetQuantity     ViolationCode = "missing_net_quantity"
	ViolationMissingManufacturer    ViolationCode = "missing_manufacturer"
	ViolationMissingAddress         ViolationCode = "missing_address"
	ViolationMissingManufactureDate ViolationCode = "missing_manufacture_date"
	ViolationMissingConsumerCare    ViolationCode = "missing_consumer_care"
)

// MandatoryLabelFields is the number of modeled mandatory declarations on
// a product label: MRP, net quantity, manufacturer, address, manufacture
// date and consumer care contact.
const MandatoryLabelFields = 6

// ScanResult is the outcome of label extraction for one product.
type ScanResult struct {
	ProductName     string          `json:"product_name"`
	GTIN            string          `json:"gtin"`
	MRP             string          `json:"mrp"`
	NetQuantity     string          `json:"net_quantity"`
	Manufacturer    string          `json:"manufacturer"`
	Address         string          `json:"address"`
	ManufactureDate string          `json:"manufacture_date"`
	ConsumerCare    string          `json:"consumer_care"`
	Violations      []ViolationCode `json:"violations"`
	ComplianceScore float64         `json:"compliance_score"`
}

// ComplianceScore is the percentage of mandatory declarations free of
// violations. Always derive the stored score from the violation set.
func ComplianceScore(violations []ViolationCode) float64 {
	return float64(MandatoryLabelFields-len(violations)) / float64(MandatoryLabelFields) * 100
}

// Compliant reports whether the scan found no violations.
func (r ScanResult) Compliant() bool {
	return len(r.Violations) == 0
}
