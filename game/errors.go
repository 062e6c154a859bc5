package game

import "errors"

var (
	ErrInvalidPosition = errors.New("that position does not exist on a checkers board")
	ErrInvalidColor    = errors.New("color must be black or red")
	ErrIllegalMove     = errors.New("move is not in the legal move set")
	ErrOccupied        = errors.New("position is already occupied")
)
