package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContact            = errors.New("contact requires name, email and message")
	ErrInvalidVolunteer          = errors.New("volunteer requires full name, email and phone")
	ErrInvalidPartnerApplication = errors.New("partner application requires organization, contact person and email")
)

// IOutreachUseCase covers the public site forms: contact messages, volunteer
// sign-ups and partner applications.

type IOutreachUseCase interface {
	SubmitContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	RegisterVolunteer(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]entities.Volunteer, error)
	ApplyPartner(ctx context.Context, p entities.PartnerApplication) (entities.PartnerApplication, error)
	ListPartnerApplications(ctx context.Context) ([]entities.PartnerApplication, error)
}

type OutreachUseCase struct {
	contacts   interfaces.IContactRepository
	volunteers interfaces.IVolunteerRepository
	partners   interfaces.IPartnerApplicationRepository
}

var _ IOutreachUseCase = (*OutreachUseCase)(nil)

func NewOutreachUseCase(contacts interfaces.IContactRepository, volunteers interfaces.IVolunteerRepository, partners interfaces.IPartnerApplicationRepository) *OutreachUseCase {
	return &OutreachUseCase{contacts: contacts, volunteers: volunteers, partners: partners}
}

func (u *OutreachUseCase) SubmitContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return entities.Contact{}, ErrInvalidContact
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return u.contacts.Create(ctx, c)
}

func (u *OutreachUseCase) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return u.contacts.List(ctx)
}

func (u *OutreachUseCase) RegisterVolunteer(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error) {
	v.FullName = strings.TrimSpace(v.FullName)
	v.Email = strings.TrimSpace(v.Email)
	v.Phone = strings.TrimSpace(v.Phone)
	if v.FullName == "" || v.Email == "" || v.Phone == "" {
		return entities.Volunteer{}, ErrInvalidVolunteer
	}
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	return u.volunteers.Create(ctx, v)
}

func (u *OutreachUseCase) ListVolunteers(ctx context.Context) ([]entities.Volunteer, error) {
	return u.volunteers.List(ctx)
}

func (u *OutreachUseCase) ApplyPartner(ctx context.Context, p entities.PartnerApplication) (entities.PartnerApplication, error) {
	p.OrganizationName = strings.TrimSpace(p.OrganizationName)
	p.ContactPerson = strings.TrimSpace(p.ContactPerson)
	p.Email = strings.TrimSpace(p.Email)
	if p.OrganizationName == "" || p.ContactPerson == "" || p.Email == "" {
		return entities.PartnerApplication{}, ErrInvalidPartnerApplication
	}
	p.ID = uuid.NewString()
	p.DateApplied = time.Now().UTC()
	return u.partners.Create(ctx, p)
}

func (u *OutreachUseCase) ListPartnerApplications(ctx context.Context) ([]entities.PartnerApplication, error) {
	return u.partners.List(ctx)
}
