package models

import "time"

// Enquiry statuses accepted by the triage endpoints.
const (
	EnquiryStatusNew      = "new"
	EnquiryStatusRead     = "read"
	EnquiryStatusResolved = "resolved"
)

// Enquiry is one contact-form submission.
type Enquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    string
	CreatedAt time.Time
}
