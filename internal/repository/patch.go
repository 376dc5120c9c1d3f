package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Op is a single field-set operation produced by a partial-update builder.
// Field is the stored field name, not the request attribute name; builders own
// that rename.
type Op struct {
	Field string
	Value interface{}
}

// Set builds a field-set operation.
func Set(field string, value interface{}) Op {
	return Op{Field: field, Value: value}
}

// pipeline turns an op sequence into an aggregation-pipeline update, one $set
// stage per op, preserving order.
func pipeline(ops []Op) mongo.Pipeline {
	p := make(mongo.Pipeline, 0, len(ops))
	for _, op := range ops {
		p = append(p, bson.D{{Key: "$set", Value: bson.D{{Key: op.Field, Value: op.Value}}}})
	}
	return p
}
