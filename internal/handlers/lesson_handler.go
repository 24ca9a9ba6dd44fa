package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellar-compass/learning-service/internal/services"
	"github.com/stellar-compass/learning-service/internal/utils"
	"github.com/stellar-compass/learning-service/internal/validator"
)

type LessonHandler struct {
	BaseHandler
	service   services.LessonService
	validator *validator.Validator
}

func NewLessonHandler(service services.LessonService, validator *validator.Validator, logger utils.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

// CreateLesson handles POST /api/lesson. Role gating (ADMIN or MENTOR) is
// applied on the route; a missing referenced subject answers 404.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	h.LogRequest(c, "Creating lesson")

	req := &services.CreateLessonRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	lesson, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/lesson/%s", lesson.ID.Hex()))
	c.JSON(http.StatusCreated, lesson)
}

// GetAllLessons handles GET /api/lesson.
func (h *LessonHandler) GetAllLessons(c *gin.Context) {
	lessons, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// GetLesson handles GET /api/lesson/:id.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lesson, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// GetLessonsBySubject handles GET /api/lesson/subject/:subjectId. An
// unknown subject yields an empty list, not an error.
func (h *LessonHandler) GetLessonsBySubject(c *gin.Context) {
	lessons, err := h.service.GetBySubject(c.Request.Context(), c.Param("subjectId"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// UpdateLesson handles PUT /api/lesson/:id with per-field merge semantics.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Updating lesson", "lesson_id", id)

	req := &services.UpdateLessonRequest{}
	if !h.bindAndValidate(c, h.validator, req) {
		return
	}

	lesson, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /api/lesson/:id; an absent id answers 404.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting lesson", "lesson_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
