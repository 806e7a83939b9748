package domain

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentComplaint  Intent = "complaint"
	IntentScan       Intent = "scan"
	IntentAnomaly    Intent = "anomaly"
	IntentImageMatch Intent = "image_match"
	IntentLegal      Intent = "legal"
	IntentBarcode    Intent = "barcode"
	IntentGeneral    Intent = "general"
)
