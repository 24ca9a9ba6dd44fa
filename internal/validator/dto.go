package validator

import "github.com/stellar-compass/learning-service/internal/models"

// SubjectCreateRequest is the request body for creating and for fully
// updating a subject; both fields are always required.
type SubjectCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// LessonCreateRequest is the request body for creating a lesson.
type LessonCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	VideoURL    string `json:"videoUrl"`
	ContentType string `json:"contentType"`
	SubjectID   string `json:"subjectId" validate:"required"`
}

// LessonUpdateRequest is the partial-update body for a lesson. A nil field
// means "leave unchanged". Title and Content additionally ignore blank
// values; VideoURL accepts an empty string as an explicit cleared value;
// ContentType and SubjectID apply any non-nil value without a blank check.
type LessonUpdateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	VideoURL    *string `json:"videoUrl"`
	ContentType *string `json:"contentType"`
	SubjectID   *string `json:"subjectId"`
}

// UserCreateRequest is the request body for registering a user and for the
// admin/mentor full update of a user.
type UserCreateRequest struct {
	Email   string          `json:"email" validate:"required,email"`
	Name    string          `json:"name" validate:"required"`
	Role    models.UserRole `json:"role" validate:"required,oneof=ADMIN MENTOR STUDENT"`
	Auth0ID string          `json:"auth0Id"`
}

// ProfileUpdateRequest is the self-service partial update of the caller's
// own profile. Name is applied only when non-nil and non-blank; Bio and
// AvatarURL are applied for any non-nil value, empty string included.
type ProfileUpdateRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}
