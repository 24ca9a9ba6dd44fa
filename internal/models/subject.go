package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subject titles are unique; the mongo collection carries a unique index
// on the title field (created at bootstrap).
type Subject struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
}

func (Subject) CollectionName() string {
	return "subjects"
}
