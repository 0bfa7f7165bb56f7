package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a directory record. Image holds the public URL of the uploaded
// photo and stays empty until one is uploaded.
type Employee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Mobile      string             `bson:"mobile" json:"mobile"`
	Designation string             `bson:"designation" json:"designation"`
	Gender      string             `bson:"gender" json:"gender"`
	Course      []string           `bson:"course" json:"course"`
	Image       string             `bson:"image,omitempty" json:"image"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
