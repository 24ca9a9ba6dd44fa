package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Lesson struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title   string             `json:"title" bson:"title"`
	Content string             `json:"content" bson:"content"`

	VideoURL    string `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	ContentType string `json:"contentType,omitempty" bson:"contentType,omitempty"`

	// Reference to the owning Subject. Not enforced at the store level;
	// the lesson service validates it on create and on subject change.
	SubjectID string `json:"subjectId" bson:"subjectId"`
}

func (Lesson) CollectionName() string {
	return "lessons"
}
