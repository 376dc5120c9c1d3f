package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates a raw identifier from the outside world and converts it
// into the store's native ObjectID. Anything that is not a 24-character hex
// string is rejected here, before any database access.
func ParseID(entity, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, &Error{Kind: KindInvalidID, Entity: entity, Err: err}
	}
	return id, nil
}

// RenderID is the inverse of ParseID. It is total for IDs assigned by the
// store.
func RenderID(id primitive.ObjectID) string {
	return id.Hex()
}
