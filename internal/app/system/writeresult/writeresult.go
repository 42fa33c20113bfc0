// Package writeresult shapes mongo-driver write results into the JSON
// objects clients of this API consume.
//
// The driver result structs carry no json tags, so encoding them directly
// would produce "MatchedCount" style keys. These types keep the camelCase
// shape (acknowledged, insertedId, matchedCount, ...) the frontend reads.
package writeresult

import "go.mongodb.org/mongo-driver/mongo"

// Insert is the result of a single-document insert.
type Insert struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// Update is the result of a single-document update or upsert.
// UpsertedID is null unless the update inserted a document.
type Update struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// Delete is the result of a single-document delete.
type Delete struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// FromInsert converts an InsertOneResult. The service only issues
// acknowledged writes, so a non-nil result is always acknowledged and a nil
// result maps to the zero value.
func FromInsert(r *mongo.InsertOneResult) Insert {
	if r == nil {
		return Insert{}
	}
	return Insert{Acknowledged: true, InsertedID: r.InsertedID}
}

// FromUpdate converts an UpdateResult.
func FromUpdate(r *mongo.UpdateResult) Update {
	if r == nil {
		return Update{}
	}
	return Update{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

// FromDelete converts a DeleteResult.
func FromDelete(r *mongo.DeleteResult) Delete {
	if r == nil {
		return Delete{}
	}
	return Delete{Acknowledged: true, DeletedCount: r.DeletedCount}
}
