package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

// memRepo is an in-memory Repository used by the service tests. It mirrors
// the store contracts: ids are ObjectIDs, user email and subject title are
// unique, subject deletes are silent no-ops.
type memRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User
	subjects map[string]*models.Subject
	lessons  map[string]*models.Lesson
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    map[string]*models.User{},
		subjects: map[string]*models.Subject{},
		lessons:  map[string]*models.Lesson{},
	}
}

func (m *memRepo) User() repositories.UserRepository       { return &memUserRepo{m} }
func (m *memRepo) Subject() repositories.SubjectRepository { return &memSubjectRepo{m} }
func (m *memRepo) Lesson() repositories.LessonRepository   { return &memLessonRepo{m} }
func (m *memRepo) Ping(ctx context.Context) error          { return nil }
func (m *memRepo) Close(ctx context.Context) error         { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ----- users -----

type memUserRepo struct{ r *memRepo }

func (s *memUserRepo) Create(ctx context.Context, user *models.User) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	for _, u := range s.r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	s.r.users[user.ID.Hex()] = &cp
	return nil
}

func (s *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	u, ok := s.r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	for _, u := range s.r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	users := []*models.User{}
	for _, u := range s.r.users {
		cp := *u
		users = append(users, &cp)
	}
	return users, nil
}

func (s *memUserRepo) Update(ctx context.Context, user *models.User) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if _, ok := s.r.users[user.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	for _, u := range s.r.users {
		if u.Email == user.Email && u.ID != user.ID {
			return repositories.ErrDuplicateKey
		}
	}
	cp := *user
	s.r.users[user.ID.Hex()] = &cp
	return nil
}

func (s *memUserRepo) Delete(ctx context.Context, id string) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if _, ok := s.r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.r.users, id)
	return nil
}

func (s *memUserRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	_, ok := s.r.users[id]
	return ok, nil
}

// ----- subjects -----

type memSubjectRepo struct{ r *memRepo }

func (s *memSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	for _, sub := range s.r.subjects {
		if sub.Title == subject.Title {
			return repositories.ErrDuplicateKey
		}
	}
	if subject.ID.IsZero() {
		subject.ID = primitive.NewObjectID()
	}
	cp := *subject
	s.r.subjects[subject.ID.Hex()] = &cp
	return nil
}

func (s *memSubjectRepo) GetByID(ctx context.Context, id string) (*models.Subject, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	sub, ok := s.r.subjects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (s *memSubjectRepo) GetAll(ctx context.Context) ([]*models.Subject, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	subjects := []*models.Subject{}
	for _, sub := range s.r.subjects {
		cp := *sub
		subjects = append(subjects, &cp)
	}
	return subjects, nil
}

func (s *memSubjectRepo) Update(ctx context.Context, subject *models.Subject) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if _, ok := s.r.subjects[subject.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	cp := *subject
	s.r.subjects[subject.ID.Hex()] = &cp
	return nil
}

func (s *memSubjectRepo) Delete(ctx context.Context, id string) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	delete(s.r.subjects, id)
	return nil
}

func (s *memSubjectRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	_, ok := s.r.subjects[id]
	return ok, nil
}

func (s *memSubjectRepo) Count(ctx context.Context) (int64, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	return int64(len(s.r.subjects)), nil
}

// ----- lessons -----

type memLessonRepo struct{ r *memRepo }

func (s *memLessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	cp := *lesson
	s.r.lessons[lesson.ID.Hex()] = &cp
	return nil
}

func (s *memLessonRepo) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	l, ok := s.r.lessons[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *memLessonRepo) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	lessons := []*models.Lesson{}
	for _, l := range s.r.lessons {
		cp := *l
		lessons = append(lessons, &cp)
	}
	return lessons, nil
}

func (s *memLessonRepo) GetBySubjectID(ctx context.Context, subjectID string) ([]*models.Lesson, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	lessons := []*models.Lesson{}
	for _, l := range s.r.lessons {
		if l.SubjectID == subjectID {
			cp := *l
			lessons = append(lessons, &cp)
		}
	}
	return lessons, nil
}

func (s *memLessonRepo) Update(ctx context.Context, lesson *models.Lesson) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if _, ok := s.r.lessons[lesson.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	cp := *lesson
	s.r.lessons[lesson.ID.Hex()] = &cp
	return nil
}

func (s *memLessonRepo) Delete(ctx context.Context, id string) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if _, ok := s.r.lessons[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.r.lessons, id)
	return nil
}

func (s *memLessonRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	_, ok := s.r.lessons[id]
	return ok, nil
}
