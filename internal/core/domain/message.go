package domain

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type MessageKind string

const (
	KindComplaint MessageKind = "complaint"
	KindScan      MessageKind = "scan"
	KindOCR       MessageKind = "ocr"
	KindAnomaly   MessageKind = "anomaly"
	KindCV        MessageKind = "cv"
	KindLegal     MessageKind = "legal"
	KindBarcode   MessageKind = "barcode"
	KindNormal    MessageKind = "normal"
)

// Message is one entry in a conversation. Messages are immutable once
// appended; insertion order is the total order of the conversation.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Kind      MessageKind `json:"kind"`
	Payload   any         `json:"payload,omitempty"`
}

// ConversationSnapshot is the read-only view handed to the presentation
// layer after every mutation.
type ConversationSnapshot struct {
	Messages     []Message `json:"messages"`
	IsComposing  bool      `json:"is_composing"`
	IsProcessing bool      `json:"is_processing"`
}

// UploadDescriptor identifies an uploaded file. The file body never
// reaches this core; analysis runs against simulated extraction.
type UploadDescriptor struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// UploadAnalysis is the payload of the combined message closing an
// upload pipeline run.
type UploadAnalysis struct {
	Scan           ScanResult    `json:"scan"`
	Anomaly        AnomalyResult `json:"anomaly"`
	Recommendation string        `json:"recommendation"`
}
