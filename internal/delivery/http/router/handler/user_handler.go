package handler

import (
	"net/http"

	deliverymiddleware "roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the authenticated user endpoints.
type UserHandler struct {
	uc usecase.AccountUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetUser handles the request to read another account's profile. The
// access decision (self, creator, or shared organisation) happens in the
// usecase layer.
func (h *UserHandler) GetUser(c echo.Context) error {
	requesterID, requesterOrgIDs, ok := authenticatedIdentity(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), requesterID, requesterOrgIDs, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User retrieved successfully", profile)
}

// authenticatedIdentity reads the identity the auth middleware stored on
// the context. A missing value means the middleware did not run.
func authenticatedIdentity(c echo.Context) (uuid.UUID, []uuid.UUID, bool) {
	userID, ok := c.Get(deliverymiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, nil, false
	}

	orgIDs, _ := c.Get(deliverymiddleware.ContextKeyOrgIDs).([]uuid.UUID)

	return userID, orgIDs, true
}
