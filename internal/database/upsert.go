package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert writes doc under the natural-key filter and decodes the stored row
// back into doc, so callers see the persisted _id and created_at even when
// the filter matched an existing document.
func Upsert(ctx context.Context, col *mongo.Collection, filter bson.M, doc interface{}) error {
	update, err := UpsertUpdate(doc)
	if err != nil {
		return err
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	return col.FindOneAndUpdate(ctx, filter, update, opts).Decode(doc)
}

// UpsertUpdate builds the update document Upsert sends. _id must never
// appear under $set: Mongo rejects updates to the immutable _id path, which
// would fail every re-run against an existing row. created_at is written
// only on insert so the original timestamp survives.
func UpsertUpdate(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "_id")

	update := bson.M{"$set": fields}
	if _, ok := fields["created_at"]; ok {
		delete(fields, "created_at")
		update["$setOnInsert"] = bson.M{"created_at": time.Now()}
	}
	return update, nil
}
