package service

import (
	"gochurch/internal/database"
	"gochurch/internal/models"
)

// conflictOr maps a unique-key violation to a CONFLICT AppError with msg and
// passes every other error through unchanged.
func conflictOr(err error, msg string) error {
	if database.IsUniqueViolation(err) {
		return models.NewConflictError(msg)
	}
	return err
}
