package models

// ContactStatus tracks how a contact message has been handled.
type ContactStatus int

const (
	ContactStatusNew      ContactStatus = 1
	ContactStatusReceived ContactStatus = 2
	ContactStatusRejected ContactStatus = 3
)

// Label returns the display name for the status, or an empty string for
// values the backend has not defined.
func (s ContactStatus) Label() string {
	switch s {
	case ContactStatusNew:
		return "New"
	case ContactStatusReceived:
		return "Received"
	case ContactStatusRejected:
		return "Rejected"
	default:
		return ""
	}
}

// Contact is a message submitted through the storefront contact page.
type Contact struct {
	ContactID int           `json:"contact_id"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Content   string        `json:"content"`
	Status    ContactStatus `json:"status"`
	CreatedAt string        `json:"created_at,omitempty"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}
