package inventory

import "errors"

var (
	ErrDuplicateID   = errors.New("item id already exists")
	ErrNotFound      = errors.New("item not found")
	ErrInactiveItem  = errors.New("item is inactive")
	ErrNegativeStock = errors.New("stock cannot go negative")
	ErrValidation    = errors.New("invalid input")
	ErrEmptyExport   = errors.New("no items to export")
)
