// Package docid turns client-supplied identifiers into document _ids.
package docid

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid is returned for identifiers that are not 24-character hex.
var ErrInvalid = errors.New("invalid document id")

// Parse converts a hex id into an ObjectID.
//
// An empty id yields a freshly generated ObjectID rather than an error.
// Clients that omit the id therefore address a document that does not
// exist yet: reads find nothing, deletes delete nothing, and upserts create
// a new document.
func Parse(hex string) (primitive.ObjectID, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return primitive.NewObjectID(), nil
	}
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalid
	}
	return oid, nil
}

// Key returns s as a filter value for a loosely keyed field such as an
// email. An empty s becomes nil, which matches documents where the field is
// null or missing, so a request that omits the key finds records stored
// without it.
func Key(s string) any {
	if s == "" {
		return nil
	}
	return s
}
