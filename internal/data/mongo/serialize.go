package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToPublic converts a raw store document into its transport shape:
// the _id field becomes a string "id", native datetimes become
// RFC 3339 text, everything else passes through. Nil in, nil out.
// Applying it to an already-public map is a no-op.
func ToPublic(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}
	out := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		if key == "_id" {
			out["id"] = publicID(value)
			continue
		}
		out[key] = publicValue(value)
	}
	return out
}

func publicID(value interface{}) interface{} {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return value
}

func publicValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return value
	}
}
