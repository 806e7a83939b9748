package domain

import "time"

const (
	ComplaintCategory          = "Legal Metrology Violation"
	ComplaintPriorityHigh      = "High"
	ComplaintStatusUnderReview = "Under Review"
)

// ComplaintRecord is a filed regulatory complaint. Records are immutable
// here; status transitions belong to the review workflow outside this core.
type ComplaintRecord struct {
	ID       string    `json:"id"`
	FiledAt  time.Time `json:"filed_at"`
	Category string    `json:"category"`
	Priority string    `json:"priority"`
	Status   string    `json:"status"`
}

// Notification is the out-of-band toast event raised once per filing.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
