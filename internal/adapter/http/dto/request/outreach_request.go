package request

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type VolunteerRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

type PartnerApplicationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	ContactPerson    string `json:"contact_person" binding:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"required"`
	Address          string `json:"address"`
	Message          string `json:"message"`
}
