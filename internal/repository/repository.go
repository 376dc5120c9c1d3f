package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document is a stored record that knows how to produce its API-shaped entity.
type Document[E any] interface {
	Entity() E
}

// Mongo is the MongoDB-backed repository core shared by the book and meeting
// repositories. It owns the collection handle and the decode step; entity
// packages supply the document type, the insert record, and the partial-update
// builders. The handle is safe for concurrent use; atomicity of concurrent
// writers to the same document is delegated to FindOneAndUpdate.
type Mongo[D Document[E], E any] struct {
	entity string
	col    *mongo.Collection
}

// NewMongo creates a repository core over the given collection. entity is the
// lowercase entity name used in error messages ("book", "meeting").
func NewMongo[D Document[E], E any](entity string, col *mongo.Collection) *Mongo[D, E] {
	return &Mongo[D, E]{entity: entity, col: col}
}

// Insert stores a new record and returns the assigned identifier in hex form.
// record must not carry an _id; the store assigns one.
func (m *Mongo[D, E]) Insert(ctx context.Context, record interface{}) (string, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return "", &Error{Kind: KindSerialization, Entity: m.entity, Err: err}
	}
	res, err := m.col.InsertOne(ctx, bson.Raw(raw))
	if err != nil {
		return "", &Error{Kind: KindStore, Entity: m.entity, Err: err}
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &Error{Kind: KindBadInsertResult, Entity: m.entity}
	}
	return RenderID(id), nil
}

// Get looks a record up by its raw identifier.
func (m *Mongo[D, E]) Get(ctx context.Context, rawID string) (E, error) {
	var zero E
	id, err := ParseID(m.entity, rawID)
	if err != nil {
		return zero, err
	}
	return m.decode(m.col.FindOne(ctx, bson.M{"_id": id}))
}

// Update applies a partial update as one atomic find-and-modify and returns
// the post-update entity. An empty op sequence degenerates to a plain fetch;
// the existence check still applies.
func (m *Mongo[D, E]) Update(ctx context.Context, rawID string, ops []Op) (E, error) {
	if len(ops) == 0 {
		return m.Get(ctx, rawID)
	}
	return m.Modify(ctx, rawID, pipeline(ops))
}

// Modify runs an arbitrary atomic find-and-modify against the record with the
// given raw identifier, returning the post-update entity. update may be a
// classic update document or an aggregation pipeline.
func (m *Mongo[D, E]) Modify(ctx context.Context, rawID string, update interface{}) (E, error) {
	var zero E
	id, err := ParseID(m.entity, rawID)
	if err != nil {
		return zero, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return m.decode(m.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts))
}

// List returns every record in the collection. sort may be nil for natural
// order. A single undecodable record fails the whole call; no partial result
// is returned.
func (m *Mongo[D, E]) List(ctx context.Context, sort bson.D) ([]E, error) {
	findOpts := options.Find()
	if sort != nil {
		findOpts.SetSort(sort)
	}
	cur, err := m.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, &Error{Kind: KindStore, Entity: m.entity, Err: err}
	}
	defer cur.Close(ctx)

	out := []E{}
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, &Error{Kind: KindDeserialization, Entity: m.entity, Err: err}
		}
		out = append(out, d.Entity())
	}
	if err := cur.Err(); err != nil {
		return nil, &Error{Kind: KindStore, Entity: m.entity, Err: err}
	}
	return out, nil
}

// Delete removes the record with the given raw identifier. Deleting an absent
// record is not an error; the operation is idempotent.
func (m *Mongo[D, E]) Delete(ctx context.Context, rawID string) error {
	id, err := ParseID(m.entity, rawID)
	if err != nil {
		return err
	}
	if _, err := m.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return &Error{Kind: KindStore, Entity: m.entity, Err: err}
	}
	return nil
}

func (m *Mongo[D, E]) decode(res *mongo.SingleResult) (E, error) {
	var zero E
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, &Error{Kind: KindNotFound, Entity: m.entity}
		}
		return zero, &Error{Kind: KindStore, Entity: m.entity, Err: err}
	}
	var d D
	if err := res.Decode(&d); err != nil {
		return zero, &Error{Kind: KindDeserialization, Entity: m.entity, Err: err}
	}
	return d.Entity(), nil
}
