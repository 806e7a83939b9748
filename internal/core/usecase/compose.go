package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

const greetingText = "Hello! I'm your Compliance Assistant. I can help you with product compliance queries and raise complaints automatically. How can I assist you today?"

const legalText = "All pre-packaged products must comply with legal metrology requirements: a declared MRP inclusive of all taxes, net quantity in standard units, manufacturer name and address, date of manufacture and a consumer care contact. Missing or obscured declarations on the label or packaging are reportable violations."

const barcodeText = "Share a GTIN, EAN or ASIN and I can pull the product listing for verification. Barcode lookups cover registered listings across the monitored marketplaces and return the declared label data on file."

const apologyText = "Sorry, I couldn't complete that analysis just now. Please try again in a moment."

const pipelineStartedText = "File received. Preprocessing the image and queuing label extraction. I'll post the combined analysis here shortly."

// generalFallbacks are the canned replies for unmatched messages.
var generalFallbacks = []string{
	"I can help you with product compliance checks, complaint registration, and general queries about our platform.",
	"Our system monitors e-commerce platforms for compliance violations and helps consumers report issues.",
	"You can scan product labels, check compliance status, and register complaints through our platform.",
}

// ResponseComposer renders analysis results into bot messages. It never
// recomputes scores; composition is purely textual.
type ResponseComposer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewResponseComposer(rng *rand.Rand) *ResponseComposer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ResponseComposer{rng: rng, now: time.Now}
}

func (c *ResponseComposer) Greeting() domain.Message {
	return c.newMessage(domain.KindNormal, greetingText, nil)
}

func (c *ResponseComposer) Scan(result domain.ScanResult) domain.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Label extraction finished for %s (GTIN %s).\n", result.ProductName, result.GTIN)
	fmt.Fprintf(&b, "MRP %s, net quantity %s, manufactured %s.\n", result.MRP, result.NetQuantity, result.ManufactureDate)
	fmt.Fprintf(&b, "Manufacturer: %s, %s. Consumer care: %s.\n", result.Manufacturer, result.Address, result.ConsumerCare)
	fmt.Fprintf(&b, "Compliance score: %.0f%%.", result.ComplianceScore)
	if len(result.Violations) > 0 {
		fmt.Fprintf(&b, " Violations found: %s.", joinViolations(result.Violations))
	} else {
		b.WriteString(" No violations found.")
	}
	return c.newMessage(domain.KindOCR, b.String(), result)
}

func (c *ResponseComposer) Anomaly(result domain.AnomalyResult) domain.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Cross-marketplace check complete. Risk score %.2f (%s).\n", result.RiskScore, result.Tier())
	fmt.Fprintf(&b, "Sources checked: %s.", strings.Join(result.Sources, ", "))
	for _, anomaly := range result.Anomalies {
		fmt.Fprintf(&b, "\n- %s: %s", anomaly.Type, anomaly.Detail)
	}
	return c.newMessage(domain.KindAnomaly, b.String(), result)
}

func (c *ResponseComposer) ImageMatch(result domain.MatchResult) domain.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Visual comparison complete. Similarity %.2f, verdict %s.", result.Similarity, result.Verdict())
	if len(result.Flags) > 0 {
		flags := make([]string, 0, len(result.Flags))
		for _, flag := range result.Flags {
			flags = append(flags, string(flag))
		}
		fmt.Fprintf(&b, "\nFlags: %s.", strings.Join(flags, ", "))
	}
	return c.newMessage(domain.KindCV, b.String(), result)
}

func (c *ResponseComposer) Complaint(record domain.ComplaintRecord) domain.Message {
	text := fmt.Sprintf(
		"Complaint registered successfully. Reference ID: %s.\nCategory: %s. Priority: %s. Status: %s.\nYour complaint has been logged and will be reviewed within 24-48 hours.",
		record.ID, record.Category, record.Priority, record.Status,
	)
	return c.newMessage(domain.KindComplaint, text, record)
}

func (c *ResponseComposer) Legal() domain.Message {
	return c.newMessage(domain.KindLegal, legalText, nil)
}

func (c *ResponseComposer) Barcode() domain.Message {
	return c.newMessage(domain.KindBarcode, barcodeText, nil)
}

func (c *ResponseComposer) General() domain.Message {
	c.mu.Lock()
	text := generalFallbacks[c.rng.IntN(len(generalFallbacks))]
	c.mu.Unlock()
	return c.newMessage(domain.KindNormal, text, nil)
}

func (c *ResponseComposer) Apology() domain.Message {
	return c.newMessage(domain.KindNormal, apologyText, nil)
}

func (c *ResponseComposer) PipelineStarted() domain.Message {
	return c.newMessage(domain.KindNormal, pipelineStartedText, nil)
}

// UploadAnalysis composites the scan and anomaly results of an upload
// run into one closing message.
func (c *ResponseComposer) UploadAnalysis(scan domain.ScanResult, anomaly domain.AnomalyResult) domain.Message {
	recommendation := "This product appears compliant."
	if !scan.Compliant() {
		recommendation = "This product is non-compliant, consider filing a complaint."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis complete for %s (GTIN %s).\n", scan.ProductName, scan.GTIN)
	fmt.Fprintf(&b, "Compliance score: %.0f%%.", scan.ComplianceScore)
	if len(scan.Violations) > 0 {
		fmt.Fprintf(&b, " Violations found: %s.", joinViolations(scan.Violations))
	}
	fmt.Fprintf(&b, "\nMarketplace risk score %.2f (%s) across %s.", anomaly.RiskScore, anomaly.Tier(), strings.Join(anomaly.Sources, ", "))
	fmt.Fprintf(&b, "\nRecommendation: %s", recommendation)

	payload := domain.UploadAnalysis{
		Scan:           scan,
		Anomaly:        anomaly,
		Recommendation: recommendation,
	}
	return c.newMessage(domain.KindScan, b.String(), payload)
}

func (c *ResponseComposer) newMessage(kind domain.MessageKind, text string, payload any) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    domain.SenderBot,
		Timestamp: c.now().UTC(),
		Kind:      kind,
		Payload:   payload,
	}
}

func joinViolations(violations []domain.ViolationCode) string {
	parts := make([]string, 0, len(violations))
	for _, violation := range violations {
		parts = append(parts, strings.ReplaceAll(string(violation), "_", " "))
	}
	return strings.Join(parts, ", ")
}
