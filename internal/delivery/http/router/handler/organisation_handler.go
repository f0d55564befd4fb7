package handler

import (
	"net/http"

	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateOrganisationRequest is the payload for creating an organisation.
type CreateOrganisationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// AddMemberRequest is the payload for connecting a user to an organisation.
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// OrganisationHandler holds dependencies for the organisation endpoints.
type OrganisationHandler struct {
	uc usecase.OrganisationUsecase
}

// NewOrganisationHandler is the constructor for OrganisationHandler, injected by Fx.
func NewOrganisationHandler(uc usecase.OrganisationUsecase) *OrganisationHandler {
	return &OrganisationHandler{uc: uc}
}

// Create handles the organisation creation request.
func (h *OrganisationHandler) Create(c echo.Context) error {
	requesterID, _, ok := authenticatedIdentity(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req CreateOrganisationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid organisation payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), requesterID, &usecase.CreateOrganisationInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Organisation created successfully", output)
}

// List handles the request to list the requester's organisations.
func (h *OrganisationHandler) List(c echo.Context) error {
	requesterID, _, ok := authenticatedIdentity(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	outputs, err := h.uc.List(c.Request().Context(), requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Organisations retrieved successfully", outputs)
}

// Get handles the request to read a single organisation.
func (h *OrganisationHandler) Get(c echo.Context) error {
	_, requesterOrgIDs, ok := authenticatedIdentity(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid organisation ID")
	}

	output, err := h.uc.Get(c.Request().Context(), requesterOrgIDs, orgID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Organisation retrieved successfully", output)
}

// AddMember handles the request to connect a user to an organisation.
func (h *OrganisationHandler) AddMember(c echo.Context) error {
	if _, _, ok := authenticatedIdentity(c); !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid organisation ID")
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid member payload")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "A valid userId is required")
	}

	if err := h.uc.AddMember(c.Request().Context(), orgID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User added to organisation successfully", nil)
}

// InviteQR handles the request for an organisation's invite QR code.
func (h *OrganisationHandler) InviteQR(c echo.Context) error {
	_, requesterOrgIDs, ok := authenticatedIdentity(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid organisation ID")
	}

	png, err := h.uc.InviteQR(c.Request().Context(), requesterOrgIDs, orgID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
