package response

import (
	"time"

	"epicare_backend/internal/domain/entities"
)

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{ID: c.ID, Name: c.Name, Email: c.Email, Message: c.Message, CreatedAt: c.CreatedAt}
}

func FromContacts(contacts []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromContact(c))
	}
	return out
}

type VolunteerResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       string    `json:"skills,omitempty"`
	Availability string    `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromVolunteer(v entities.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ID:           v.ID,
		FullName:     v.FullName,
		Email:        v.Email,
		Phone:        v.Phone,
		Skills:       v.Skills,
		Availability: v.Availability,
		CreatedAt:    v.CreatedAt,
	}
}

func FromVolunteers(volunteers []entities.Volunteer) []VolunteerResponse {
	out := make([]VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, FromVolunteer(v))
	}
	return out
}

type PartnerApplicationResponse struct {
	ID               string    `json:"id"`
	OrganizationName string    `json:"organization_name"`
	ContactPerson    string    `json:"contact_person"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email"`
	Address          string    `json:"address,omitempty"`
	Message          string    `json:"message,omitempty"`
	DateApplied      time.Time `json:"date_applied"`
}

func FromPartnerApplication(p entities.PartnerApplication) PartnerApplicationResponse {
	return PartnerApplicationResponse{
		ID:               p.ID,
		OrganizationName: p.OrganizationName,
		ContactPerson:    p.ContactPerson,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		Message:          p.Message,
		DateApplied:      p.DateApplied,
	}
}

func FromPartnerApplications(apps []entities.PartnerApplication) []PartnerApplicationResponse {
	out := make([]PartnerApplicationResponse, 0, len(apps))
	for _, p := range apps {
		out = append(out, FromPartnerApplication(p))
	}
	return out
}
