package services

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// flattenPatch turns a partial document into dotted $set paths so nested
// fields that are absent from the patch survive the update. Empty objects are
// kept as-is and replace the stored value. Top-level _id is dropped.
func flattenPatch(patch map[string]interface{}) (bson.M, error) {
	out := bson.M{}
	if err := flattenInto(out, "", patch); err != nil {
		return nil, err
	}
	delete(out, "_id")
	return out, nil
}

func flattenInto(out bson.M, prefix string, m map[string]interface{}) error {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if k == "" || strings.HasPrefix(k, "$") {
			return &ValidationError{Reason: "invalid field name", Fields: []string{path}}
		}
		if nested, ok := asMap(v); ok && len(nested) > 0 {
			if err := flattenInto(out, path, nested); err != nil {
				return err
			}
			continue
		}
		out[path] = v
	}
	return nil
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case bson.M:
		return t, true
	default:
		return nil, false
	}
}

// stripID copies doc without a client supplied _id.
func stripID(doc map[string]interface{}) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}
