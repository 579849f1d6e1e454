package usecase

import (
	"context"
	"errors"
	"testing"

	"epicare_backend/internal/domain/entities"
	mock_interfaces "epicare_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOutreachUseCase_SubmitContact(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewOutreachUseCase(nil, nil, nil)
		_, err := uc.SubmitContact(context.Background(), entities.Contact{Name: " ", Email: "a@b.com", Message: "hi"})
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("success assigns id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewOutreachUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.ID == "" || c.CreatedAt.IsZero() {
					t.Fatalf("expected id and created_at assigned, got %+v", c)
				}
				return c, nil
			})

		c, err := uc.SubmitContact(context.Background(), entities.Contact{Name: " Jane ", Email: "jane@example.org", Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Jane" {
			t.Fatalf("expected trimmed name, got %q", c.Name)
		}
	})
}

func TestOutreachUseCase_RegisterVolunteer(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		uc := NewOutreachUseCase(nil, nil, nil)
		_, err := uc.RegisterVolunteer(context.Background(), entities.Volunteer{FullName: "Jane", Email: "jane@example.org"})
		if !errors.Is(err, ErrInvalidVolunteer) {
			t.Fatalf("expected ErrInvalidVolunteer, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVolunteerRepository(ctrl)
		uc := NewOutreachUseCase(nil, repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Volunteer) (entities.Volunteer, error) { return v, nil })

		v, err := uc.RegisterVolunteer(context.Background(), entities.Volunteer{FullName: "Jane", Email: "jane@example.org", Phone: "0712345678"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID == "" {
			t.Fatal("expected id assigned")
		}
	})
}

func TestOutreachUseCase_ApplyPartner(t *testing.T) {
	t.Run("missing organization", func(t *testing.T) {
		uc := NewOutreachUseCase(nil, nil, nil)
		_, err := uc.ApplyPartner(context.Background(), entities.PartnerApplication{ContactPerson: "Jane", Email: "jane@example.org"})
		if !errors.Is(err, ErrInvalidPartnerApplication) {
			t.Fatalf("expected ErrInvalidPartnerApplication, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartnerApplicationRepository(ctrl)
		uc := NewOutreachUseCase(nil, nil, repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PartnerApplication) (entities.PartnerApplication, error) { return p, nil })

		p, err := uc.ApplyPartner(context.Background(), entities.PartnerApplication{OrganizationName: "Org", ContactPerson: "Jane", Email: "jane@example.org"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.DateApplied.IsZero() {
			t.Fatalf("expected id and date assigned, got %+v", p)
		}
	})
}

func TestOutreachUseCase_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	contacts := mock_interfaces.NewMockIContactRepository(ctrl)
	volunteers := mock_interfaces.NewMockIVolunteerRepository(ctrl)
	partners := mock_interfaces.NewMockIPartnerApplicationRepository(ctrl)
	uc := NewOutreachUseCase(contacts, volunteers, partners)

	contacts.EXPECT().List(gomock.Any()).Return([]entities.Contact{{ID: "c-1"}}, nil)
	volunteers.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
	partners.EXPECT().List(gomock.Any()).Return([]entities.PartnerApplication{}, nil)

	cs, err := uc.ListContacts(context.Background())
	if err != nil || len(cs) != 1 {
		t.Fatalf("expected one contact, got %v %v", cs, err)
	}
	if _, err := uc.ListVolunteers(context.Background()); err == nil {
		t.Fatal("expected error from volunteer list")
	}
	if ps, err := uc.ListPartnerApplications(context.Background()); err != nil || len(ps) != 0 {
		t.Fatalf("expected empty partner list, got %v %v", ps, err)
	}
}
