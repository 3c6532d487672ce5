package repository

import "errors"

// Common repository errors
var (
	// ErrBoardNotFound is returned when a board is not found
	ErrBoardNotFound = errors.New("board not found")

	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidSortField is returned when a sort_by value is not sortable
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned when an order value is neither asc nor desc
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
