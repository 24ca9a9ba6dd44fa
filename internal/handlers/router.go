package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
	"github.com/stellar-compass/learning-service/internal/services"
	"github.com/stellar-compass/learning-service/internal/utils"
	"github.com/stellar-compass/learning-service/internal/validator"
)

type HandlerManager struct {
	subjectHandler *SubjectHandler
	lessonHandler  *LessonHandler
	userHandler    *UserHandler
	authMiddleware *JWTAuthMiddleware
	repo           repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	jwtSecret string,
	repo repositories.Repository,
) *HandlerManager {
	return &HandlerManager{
		subjectHandler: NewSubjectHandler(serviceManager.Subject(), validator, logger),
		lessonHandler:  NewLessonHandler(serviceManager.Lesson(), validator, logger),
		userHandler:    NewUserHandler(serviceManager.User(), validator, logger),
		authMiddleware: NewJWTAuthMiddleware(jwtSecret),
		repo:           repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// API routes with authentication
	api := router.Group("/api")
	api.Use(hm.authMiddleware.AuthMiddleware())
	{
		// Subject routes
		subjects := api.Group("/subject")
		{
			// Create/update subjects - Admins and Mentors only
			subjects.POST("", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin, models.RoleMentor), hm.subjectHandler.CreateSubject)
			subjects.PUT("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin, models.RoleMentor), hm.subjectHandler.UpdateSubject)

			// Delete subjects - Admins only
			subjects.DELETE("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.subjectHandler.DeleteSubject)

			// View subjects - All authenticated users
			subjects.GET("", hm.subjectHandler.GetAllSubjects)
		}

		// Lesson routes
		lessons := api.Group("/lesson")
		{
			lessons.POST("", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin, models.RoleMentor), hm.lessonHandler.CreateLesson)
			lessons.PUT("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin, models.RoleMentor), hm.lessonHandler.UpdateLesson)
			lessons.DELETE("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.lessonHandler.DeleteLesson)

			lessons.GET("", hm.lessonHandler.GetAllLessons)
			lessons.GET("/subject/:subjectId", hm.lessonHandler.GetLessonsBySubject)
			lessons.GET("/:id", hm.lessonHandler.GetLesson)
		}

		// User routes
		users := api.Group("/user")
		{
			// Open registration: authenticated but not role-gated
			users.POST("", hm.userHandler.CreateUser)

			users.GET("", hm.userHandler.GetAllUsers)
			users.GET("/me", hm.userHandler.GetMe)
			users.PUT("/me", hm.userHandler.UpdateMe)
			users.GET("/:id", hm.userHandler.GetUser)

			// Ownership check happens inside the handler
			users.PUT("/:id", hm.userHandler.UpdateUser)

			users.DELETE("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.userHandler.DeleteUser)
		}
	}

	// Health check endpoint with a database ping
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := hm.repo.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusInternalServerError
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "learning-service",
		})
	})
}
