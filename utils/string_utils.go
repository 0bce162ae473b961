package utils

import "database/sql"

// NullStringToStringPtr converts a sql.NullString to a *string.
func NullStringToStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// PointerToString dereferences s, returning "<nil>" for a nil pointer.
func PointerToString(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
