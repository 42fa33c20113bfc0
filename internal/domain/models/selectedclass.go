// internal/domain/models/selectedclass.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClass records that a user intends to take a class. It is a
// denormalized copy of whatever the client sent, keyed loosely by the
// classID and email fields. Neither key is typed: a missing key stays
// missing and matches null in lookups.
type SelectedClass struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	Extra map[string]any `bson:",inline" json:"-"`
}

// ClassID returns the classID the client sent, or nil.
func (s SelectedClass) ClassID() any { return s.Extra["classID"] }

// Email returns the email the client sent, or nil.
func (s SelectedClass) Email() any { return s.Extra["email"] }

func (s SelectedClass) MarshalJSON() ([]byte, error) {
	type alias SelectedClass
	return marshalWithExtra(alias(s), s.Extra)
}

func (s *SelectedClass) UnmarshalJSON(b []byte) error {
	var head struct {
		ID primitive.ObjectID `json:"_id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	extra, err := extraFields(b, "_id")
	if err != nil {
		return err
	}
	*s = SelectedClass{ID: head.ID, Extra: extra}
	return nil
}
