package interfaces

import (
	"context"

	"epicare_backend/internal/domain/entities"
)

// IContactRepository abstracts DynamoDB persistence for Contact.

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	List(ctx context.Context) ([]entities.Contact, error)
}

// IVolunteerRepository abstracts DynamoDB persistence for Volunteer.

type IVolunteerRepository interface {
	Create(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error)
	List(ctx context.Context) ([]entities.Volunteer, error)
}

// IPartnerApplicationRepository abstracts DynamoDB persistence for
// PartnerApplication.

type IPartnerApplicationRepository interface {
	Create(ctx context.Context, p entities.PartnerApplication) (entities.PartnerApplication, error)
	List(ctx context.Context) ([]entities.PartnerApplication, error)
}
