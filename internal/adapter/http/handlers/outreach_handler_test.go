package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"epicare_backend/internal/adapter/http/handlers/mocks"
	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func outreachRouter(h *OutreachHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contacts", h.CreateContact)
	r.GET("/v1/contacts", h.ListContacts)
	r.POST("/v1/volunteers", h.CreateVolunteer)
	r.GET("/v1/volunteers", h.ListVolunteers)
	r.POST("/v1/partners", h.CreatePartnerApplication)
	r.GET("/v1/partners", h.ListPartnerApplications)
	return r
}

func TestOutreachHandler_CreateContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return(entities.Contact{}, usecase.ErrInvalidContact)

		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString(`{"name":" ","email":"a@b.com","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return(entities.Contact{ID: "c-1", Name: "Jane"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString(`{"name":"Jane","email":"jane@example.org","message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "c-1" {
			t.Fatalf("expected created contact, got %v", body)
		}
	})
}

func TestOutreachHandler_Volunteers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().RegisterVolunteer(gomock.Any(), gomock.Any()).Return(entities.Volunteer{ID: "v-1", FullName: "Jane"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/volunteers", bytes.NewBufferString(`{"full_name":"Jane","email":"jane@example.org","phone":"0712345678"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("list failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().ListVolunteers(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/volunteers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOutreachHandler_Partners(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().ApplyPartner(gomock.Any(), gomock.Any()).Return(entities.PartnerApplication{ID: "p-1", OrganizationName: "Org"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/partners", bytes.NewBufferString(`{"organization_name":"Org","contact_person":"Jane","email":"jane@example.org"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		r := outreachRouter(NewOutreachHandler(uc))

		uc.EXPECT().ListPartnerApplications(gomock.Any()).Return([]entities.PartnerApplication{{ID: "p-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/partners", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected one application, got %v", body)
		}
	})
}
