// Package ident holds the identifier rules shared by every aggregate.
package ident

import "go.mongodb.org/mongo-driver/bson/primitive"

// Valid reports whether s is a document-store identifier (24 hex characters).
func Valid(s string) bool {
	return primitive.IsValidObjectID(s)
}
