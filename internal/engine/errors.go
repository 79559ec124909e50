package engine

import "errors"

var (
	ErrInvalidConfig     = errors.New("suit count must be 1, 2 or 4")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNotFaceUp         = errors.New("card is face down")
	ErrNotARun           = errors.New("cards do not form a movable run")
	ErrRankMismatch      = errors.New("destination does not continue the run")
	ErrSameColumn        = errors.New("source and destination are the same column")
	ErrEmptySource       = errors.New("source column is empty")
	ErrEmptyStock        = errors.New("stock is empty")
	ErrEmptyColumnExists = errors.New("cannot deal while a column is empty")
)
