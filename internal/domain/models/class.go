// internal/domain/models/class.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class status values. Classes are created pending and change only through
// the approve and deny operations.
const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Class is a course offering submitted by an instructor.
//
// Status is the only field the service owns. Everything else a client sends
// on creation (className, availableSeats, price, instructorEmail and so on)
// lives in Extra with whatever JSON type it arrived as, and is returned on
// reads. Review feedback is written into Extra["feedback"] by the store.
type Class struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"` // pending | approved | denied

	Extra map[string]any `bson:",inline" json:"-"`
}

var classFields = []string{"_id", "status"}

// Field returns a client-supplied field, or nil when it is absent.
func (c Class) Field(key string) any {
	return c.Extra[key]
}

// MarshalJSON encodes the typed fields and the extra fields as one object.
func (c Class) MarshalJSON() ([]byte, error) {
	type alias Class
	return marshalWithExtra(alias(c), c.Extra)
}

// UnmarshalJSON decodes _id and keeps every other key in Extra. A status
// that is not a string is dropped; stores overwrite it on insert anyway.
func (c *Class) UnmarshalJSON(b []byte) error {
	var head struct {
		ID     primitive.ObjectID `json:"_id"`
		Status any                `json:"status"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	extra, err := extraFields(b, classFields...)
	if err != nil {
		return err
	}
	status, _ := head.Status.(string)
	*c = Class{ID: head.ID, Status: status, Extra: extra}
	return nil
}
