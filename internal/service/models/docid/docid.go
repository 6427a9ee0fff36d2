package docid

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is a store-assigned document identifier. It is opaque to the domain
// layer and only converted to the store's native key encoding at the
// storage boundary.
type ID string

var ErrInvalidID = errors.New("invalid document identifier")

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// ObjectID converts the identifier to the store's native key encoding.
func (id ID) ObjectID() (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return oid, nil
}

// FromObjectID converts a native store key to a domain identifier.
func FromObjectID(oid primitive.ObjectID) ID {
	return ID(oid.Hex())
}
