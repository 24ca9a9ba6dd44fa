package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleMentor  UserRole = "MENTOR"
	RoleStudent UserRole = "STUDENT"
)

// Valid reports whether the role is one of the three known roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleMentor || r == RoleStudent
}

type User struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email"`
	Name  string             `json:"name" bson:"name"`
	Role  UserRole           `json:"role" bson:"role"`

	// External identity reference (Auth0 subject), optional.
	Auth0ID string `json:"auth0Id,omitempty" bson:"auth0Id,omitempty"`

	// Mentor assignment, relevant for students.
	MentorID string `json:"mentorId,omitempty" bson:"mentorId,omitempty"`

	// Profile info
	Bio                  string `json:"bio,omitempty" bson:"bio,omitempty"`
	AvatarURL            string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	CurrentSchoolClassID string `json:"currentSchoolClassId,omitempty" bson:"currentSchoolClassId,omitempty"`

	JoinDate *time.Time `json:"joinDate,omitempty" bson:"joinDate,omitempty"`
}

func (User) CollectionName() string {
	return "users"
}
