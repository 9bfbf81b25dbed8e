package core

import "errors"

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrColumnLength    = errors.New("column length mismatch")
	ErrNotNumeric      = errors.New("column is not numeric")
)
