package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/services"
	"github.com/stellar-compass/learning-service/internal/utils"
	"github.com/stellar-compass/learning-service/internal/validator"
)

type UserHandler struct {
	BaseHandler
	service   services.UserService
	validator *validator.Validator
}

func NewUserHandler(service services.UserService, validator *validator.Validator, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

// CreateUser handles POST /api/user. Registration is open to any
// authenticated caller; no role gate is applied.
func (h *UserHandler) CreateUser(c *gin.Context) {
	h.LogRequest(c, "Creating user")

	req := &services.CreateUserRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/user/%s", user.ID.Hex()))
	c.JSON(http.StatusCreated, user)
}

// GetAllUsers handles GET /api/user.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/user/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/user/:id. Admins and mentors may update any
// user; other callers only the user whose email matches their own email
// claim. The target is read before authorizing, so an absent id answers
// 404 rather than 403.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Updating user", "user_id", id)

	principal, ok := GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "caller identity missing",
		})
		return
	}

	req := &services.CreateUserRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	if !principal.HasRole(models.RoleAdmin) && !principal.HasRole(models.RoleMentor) {
		target, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		if principal.Email == "" || target.Email != principal.Email {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "Forbidden",
				Message: "you may only update your own user",
			})
			return
		}
	}

	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/user/:id. ADMIN only, gated on the route.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting user", "user_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe handles GET /api/user/me, resolving the user by the caller's email
// claim.
func (h *UserHandler) GetMe(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}

	user, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/user/me, the self-service profile update
// restricted to name, bio and avatar.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating own profile", "email", email)

	req := &services.UpdateProfileRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), email, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) callerEmail(c *gin.Context) (string, bool) {
	principal, ok := GetPrincipal(c)
	if !ok || principal.Email == "" {
		h.handleServiceError(c, fmt.Errorf("%w: email claim missing", services.ErrUnauthorized))
		return "", false
	}
	return principal.Email, true
}
