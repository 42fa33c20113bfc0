// internal/domain/models/instructor.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor is a public instructor listing. Records are created when a user
// is promoted to instructor; nothing ties them back to the user record, so
// repeated promotions leave duplicates.
type Instructor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`

	// Seeded listings may carry more (image, bio, class counts).
	Extra map[string]any `bson:",inline" json:"-"`
}

var instructorFields = []string{"_id", "name", "email"}

func (i Instructor) MarshalJSON() ([]byte, error) {
	type alias Instructor
	return marshalWithExtra(alias(i), i.Extra)
}

func (i *Instructor) UnmarshalJSON(b []byte) error {
	type alias Instructor
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	extra, err := extraFields(b, instructorFields...)
	if err != nil {
		return err
	}
	a.Extra = extra
	*i = Instructor(a)
	return nil
}
