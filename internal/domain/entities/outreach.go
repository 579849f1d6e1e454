package entities

import "time"

// Outreach records submitted through the public site forms.
//
// Storage model (DynamoDB): one table per record kind, PK: id. These are
// admin-reviewed, low-volume rows; list endpoints scan the whole table.

// Contact is a message sent through the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Volunteer is a volunteer sign-up.
type Volunteer struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       string    `json:"skills"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}

// PartnerApplication is an organization applying to partner with Epicare.
type PartnerApplication struct {
	ID               string    `json:"id"`
	OrganizationName string    `json:"organization_name"`
	ContactPerson    string    `json:"contact_person"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address,omitempty"`
	Message          string    `json:"message,omitempty"`
	DateApplied      time.Time `json:"date_applied"`
}
