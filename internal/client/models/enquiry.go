package models

// Enquiry statuses as the backend reports them.
const (
	EnquiryStatusNew      = "new"
	EnquiryStatusRead     = "read"
	EnquiryStatusResolved = "resolved"
)

// Enquiry is a visitor message submitted through the site contact form.
type Enquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
