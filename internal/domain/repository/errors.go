// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "github.com/pkg/errors"

// Store-level failures every repository may report, independent of the entity involved.
var (
	// ErrDuplicateKey is returned when a unique constraint rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrPermissionDenied is returned when the database role may not perform the write.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrGeneratedColumn is returned when a write targets a generated column.
	ErrGeneratedColumn = errors.New("cannot write generated column")
	// ErrCommissionNotPending is returned when a conditional update on a pending commission matched nothing.
	ErrCommissionNotPending = errors.New("commission is not pending")
)
