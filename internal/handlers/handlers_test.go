package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
	"github.com/stellar-compass/learning-service/internal/services"
	"github.com/stellar-compass/learning-service/internal/utils"
	"github.com/stellar-compass/learning-service/internal/validator"
)

const testSecret = "test-secret"

// fakeServices implements services.ServiceManager over function-field fakes
// so each test can control service behavior and observe whether a service
// method was reached at all.
type fakeServices struct {
	subject *fakeSubjectService
	lesson  *fakeLessonService
	user    *fakeUserService
}

func newFakeServices() *fakeServices {
	return &fakeServices{
		subject: &fakeSubjectService{},
		lesson:  &fakeLessonService{},
		user:    &fakeUserService{},
	}
}

func (f *fakeServices) Subject() services.SubjectService { return f.subject }
func (f *fakeServices) Lesson() services.LessonService   { return f.lesson }
func (f *fakeServices) User() services.UserService       { return f.user }

type fakeSubjectService struct {
	createCalls int
	deleteCalls int

	createFn func(req *services.CreateSubjectRequest) (*models.Subject, error)
	getAllFn func() ([]*models.Subject, error)
	getFn    func(id string) (*models.Subject, error)
	updateFn func(id string, req *services.CreateSubjectRequest) (*models.Subject, error)
	deleteFn func(id string) error
}

func (s *fakeSubjectService) Create(ctx context.Context, req *services.CreateSubjectRequest) (*models.Subject, error) {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(req)
	}
	return &models.Subject{Title: req.Title, Description: req.Description}, nil
}

func (s *fakeSubjectService) GetAll(ctx context.Context) ([]*models.Subject, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return []*models.Subject{}, nil
}

func (s *fakeSubjectService) GetByID(ctx context.Context, id string) (*models.Subject, error) {
	if s.getFn != nil {
		return s.getFn(id)
	}
	return &models.Subject{}, nil
}

func (s *fakeSubjectService) Update(ctx context.Context, id string, req *services.CreateSubjectRequest) (*models.Subject, error) {
	if s.updateFn != nil {
		return s.updateFn(id, req)
	}
	return &models.Subject{Title: req.Title, Description: req.Description}, nil
}

func (s *fakeSubjectService) Delete(ctx context.Context, id string) error {
	s.deleteCalls++
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type fakeLessonService struct {
	createCalls int

	createFn       func(req *services.CreateLessonRequest) (*models.Lesson, error)
	getAllFn       func() ([]*models.Lesson, error)
	getFn          func(id string) (*models.Lesson, error)
	getBySubjectFn func(subjectID string) ([]*models.Lesson, error)
	updateFn       func(id string, req *services.UpdateLessonRequest) (*models.Lesson, error)
	deleteFn       func(id string) error
}

func (s *fakeLessonService) Create(ctx context.Context, req *services.CreateLessonRequest) (*models.Lesson, error) {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(req)
	}
	return &models.Lesson{Title: req.Title, Content: req.Content, SubjectID: req.SubjectID}, nil
}

func (s *fakeLessonService) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return []*models.Lesson{}, nil
}

func (s *fakeLessonService) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	if s.getFn != nil {
		return s.getFn(id)
	}
	return &models.Lesson{}, nil
}

func (s *fakeLessonService) GetBySubject(ctx context.Context, subjectID string) ([]*models.Lesson, error) {
	if s.getBySubjectFn != nil {
		return s.getBySubjectFn(subjectID)
	}
	return []*models.Lesson{}, nil
}

func (s *fakeLessonService) Update(ctx context.Context, id string, req *services.UpdateLessonRequest) (*models.Lesson, error) {
	if s.updateFn != nil {
		return s.updateFn(id, req)
	}
	return &models.Lesson{}, nil
}

func (s *fakeLessonService) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type fakeUserService struct {
	updateCalls int

	createFn        func(req *services.CreateUserRequest) (*models.User, error)
	getAllFn        func() ([]*models.User, error)
	getFn           func(id string) (*models.User, error)
	getByEmailFn    func(email string) (*models.User, error)
	updateFn        func(id string, req *services.CreateUserRequest) (*models.User, error)
	updateProfileFn func(email string, req *services.UpdateProfileRequest) (*models.User, error)
	deleteFn        func(id string) error
}

func (s *fakeUserService) Create(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if s.createFn != nil {
		return s.createFn(req)
	}
	return &models.User{Email: req.Email, Name: req.Name, Role: req.Role}, nil
}

func (s *fakeUserService) GetAll(ctx context.Context) ([]*models.User, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return []*models.User{}, nil
}

func (s *fakeUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if s.getFn != nil {
		return s.getFn(id)
	}
	return &models.User{}, nil
}

func (s *fakeUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(email)
	}
	return &models.User{Email: email}, nil
}

func (s *fakeUserService) Update(ctx context.Context, id string, req *services.CreateUserRequest) (*models.User, error) {
	s.updateCalls++
	if s.updateFn != nil {
		return s.updateFn(id, req)
	}
	return &models.User{Email: req.Email, Name: req.Name, Role: req.Role}, nil
}

func (s *fakeUserService) UpdateProfile(ctx context.Context, email string, req *services.UpdateProfileRequest) (*models.User, error) {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(email, req)
	}
	return &models.User{Email: email}, nil
}

func (s *fakeUserService) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

// stubRepo satisfies repositories.Repository for route wiring; only Ping is
// exercised by the handlers (via /health).
type stubRepo struct {
	pingErr error
}

func (r *stubRepo) User() repositories.UserRepository       { return nil }
func (r *stubRepo) Subject() repositories.SubjectRepository { return nil }
func (r *stubRepo) Lesson() repositories.LessonRepository   { return nil }
func (r *stubRepo) Ping(ctx context.Context) error          { return r.pingErr }
func (r *stubRepo) Close(ctx context.Context) error         { return nil }

func newTestRouter(t *testing.T, svcs *fakeServices, repo repositories.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if repo == nil {
		repo = &stubRepo{}
	}
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hm := NewHandlerManager(svcs, validator.New(), logger, testSecret, repo)

	router := gin.New()
	hm.SetupRoutes(router)
	return router
}

func makeToken(t *testing.T, secret, email string, roles ...string) string {
	t.Helper()
	claims := Claims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	return makeToken(t, testSecret, "admin@example.com", string(models.RoleAdmin))
}

func mentorToken(t *testing.T) string {
	return makeToken(t, testSecret, "mentor@example.com", string(models.RoleMentor))
}

func studentToken(t *testing.T) string {
	return makeToken(t, testSecret, "student@example.com", string(models.RoleStudent))
}
