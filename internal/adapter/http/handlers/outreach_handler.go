package handlers

import (
	"errors"
	"log"
	"net/http"

	request "epicare_backend/internal/adapter/http/dto/request"
	response "epicare_backend/internal/adapter/http/dto/response"
	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase"
	"epicare_backend/pkg"

	"github.com/gin-gonic/gin"
)

// OutreachHandler handles the public form endpoints: contact messages,
// volunteer sign-ups and partner applications.

type OutreachHandler struct {
	usecase usecase.IOutreachUseCase
}

func NewOutreachHandler(uc usecase.IOutreachUseCase) *OutreachHandler {
	return &OutreachHandler{usecase: uc}
}

func (h *OutreachHandler) CreateContact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Name, email and message are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitContact(c.Request.Context(), entities.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("[outreach][handler] contact create failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(created))
}

func (h *OutreachHandler) ListContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context())
	if err != nil {
		log.Printf("[outreach][handler] contact list failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContacts(contacts))
}

func (h *OutreachHandler) CreateVolunteer(c *gin.Context) {
	var req request.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Full name, email and phone are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.RegisterVolunteer(c.Request.Context(), entities.Volunteer{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       req.Skills,
		Availability: req.Availability,
	})
	if err != nil {
		log.Printf("[outreach][handler] volunteer create failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVolunteer(created))
}

func (h *OutreachHandler) ListVolunteers(c *gin.Context) {
	volunteers, err := h.usecase.ListVolunteers(c.Request.Context())
	if err != nil {
		log.Printf("[outreach][handler] volunteer list failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVolunteers(volunteers))
}

func (h *OutreachHandler) CreatePartnerApplication(c *gin.Context) {
	var req request.PartnerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Organization, contact person and email are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.ApplyPartner(c.Request.Context(), entities.PartnerApplication{
		OrganizationName: req.OrganizationName,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		Message:          req.Message,
	})
	if err != nil {
		log.Printf("[outreach][handler] partner application failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPartnerApplication(created))
}

func (h *OutreachHandler) ListPartnerApplications(c *gin.Context) {
	applications, err := h.usecase.ListPartnerApplications(c.Request.Context())
	if err != nil {
		log.Printf("[outreach][handler] partner application list failed err=%v", err)
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPartnerApplications(applications))
}

func mapOutreachError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContact),
		errors.Is(err, usecase.ErrInvalidVolunteer),
		errors.Is(err, usecase.ErrInvalidPartnerApplication):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
