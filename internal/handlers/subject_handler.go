package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellar-compass/learning-service/internal/services"
	"github.com/stellar-compass/learning-service/internal/utils"
	"github.com/stellar-compass/learning-service/internal/validator"
)

type SubjectHandler struct {
	BaseHandler
	service   services.SubjectService
	validator *validator.Validator
}

func NewSubjectHandler(service services.SubjectService, validator *validator.Validator, logger utils.Logger) *SubjectHandler {
	return &SubjectHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

// CreateSubject handles POST /api/subject. Role gating (ADMIN or MENTOR)
// is applied on the route.
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	h.LogRequest(c, "Creating subject")

	req := &services.CreateSubjectRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	subject, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/subject/%s", subject.ID.Hex()))
	c.JSON(http.StatusCreated, subject)
}

// GetAllSubjects handles GET /api/subject.
func (h *SubjectHandler) GetAllSubjects(c *gin.Context) {
	subjects, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// UpdateSubject handles PUT /api/subject/:id.
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Updating subject", "subject_id", id)

	req := &services.CreateSubjectRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	subject, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

// DeleteSubject handles DELETE /api/subject/:id. Deleting an absent
// subject still answers 204.
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting subject", "subject_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
