package apperror

import "errors"

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrNoBoards      = errors.New("no boards stored")
)
