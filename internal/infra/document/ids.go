package document

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID parses a hex id. Callers treat a false result as "no such document".
func ObjectID(hex string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
