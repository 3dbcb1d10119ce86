package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Client  string             `bson:"client" json:"client"`
	Rating  int                `bson:"rating" json:"rating"` // stored as int32, no bounds enforced
	Comment string             `bson:"comment" json:"comment"`
}
