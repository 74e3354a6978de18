package board

import (
	"fmt"
	"strings"
)

// Board - a square grid of spaces, size rows by size columns. The board is a
// thin structural aggregate: it validates coordinates against its size and
// delegates everything else to the addressed space. Not safe for concurrent
// use; sharing a board across goroutines is the caller's concern.
type Board[T any] struct {
	size   int
	matrix [][]Space[T]
}

// New - creates a board of the given size with every space empty.
func New[T any](size int) (*Board[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	matrix := make([][]Space[T], size)
	for row := range matrix {
		matrix[row] = make([]Space[T], size)
	}

	return &Board[T]{size: size, matrix: matrix}, nil
}

// FromMatrix - creates a board from a caller-supplied matrix of spaces.
// The matrix must be exactly size x size; anything else fails with
// ErrDimensionMismatch and no board is built. The matrix is copied, so the
// caller keeps ownership of its slices.
func FromMatrix[T any](size int, matrix [][]Space[T]) (*Board[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	if len(matrix) != size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrDimensionMismatch, size, len(matrix))
	}

	copied := make([][]Space[T], size)
	for row := range matrix {
		if len(matrix[row]) != size {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrDimensionMismatch, row, len(matrix[row]), size)
		}

		copied[row] = make([]Space[T], size)
		copy(copied[row], matrix[row])
	}

	return &Board[T]{size: size, matrix: copied}, nil
}

func (that *Board[T]) Size() int {
	return that.size
}

// SpaceAt - returns a copy of the space at the given coordinate.
// Mutating the returned space does not affect the board.
func (that *Board[T]) SpaceAt(row, column int) (Space[T], error) {
	if err := that.checkBounds(row, column); err != nil {
		return Space[T]{}, err
	}

	return that.matrix[row][column], nil
}

// OptionalAt - returns the content of the space at the given coordinate.
func (that *Board[T]) OptionalAt(row, column int) (Optional[T], error) {
	space, err := that.SpaceAt(row, column)
	if err != nil {
		return None[T](), err
	}

	return space.AsOptional(), nil
}

// ElementAt - returns the element at the given coordinate, or ErrNoElement
// when the space is empty.
func (that *Board[T]) ElementAt(row, column int) (T, error) {
	space, err := that.SpaceAt(row, column)
	if err != nil {
		var zero T
		return zero, err
	}

	return space.Element()
}

// SetOptionalAt - replaces the content of the space at the given coordinate.
// Setting an occupied space simply replaces its element; occupancy conflicts
// are a concern of whatever rules layer sits on top.
func (that *Board[T]) SetOptionalAt(row, column int, element Optional[T]) error {
	if err := that.checkBounds(row, column); err != nil {
		return err
	}

	that.matrix[row][column].SetOptionalElement(element)

	return nil
}

func (that *Board[T]) SetElementAt(row, column int, element T) error {
	return that.SetOptionalAt(row, column, Some(element))
}

func (that *Board[T]) ClearAt(row, column int) error {
	return that.SetOptionalAt(row, column, None[T]())
}

// Matrix - returns a deep copy of the board's spaces in row-major order.
func (that *Board[T]) Matrix() [][]Space[T] {
	matrix := make([][]Space[T], that.size)
	for row := range that.matrix {
		matrix[row] = make([]Space[T], that.size)
		copy(matrix[row], that.matrix[row])
	}

	return matrix
}

// RenderRow - renders one row as pipe-joined cells, adjacent cells sharing
// the pipe between them, e.g. "|X| | |" for a row holding X and two empty
// spaces.
func (that *Board[T]) RenderRow(row int) (string, error) {
	if err := that.checkBounds(row, 0); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("|")
	for column := range that.matrix[row] {
		builder.WriteString(that.matrix[row][column].content())
		builder.WriteString("|")
	}

	return builder.String(), nil
}

// String - renders the whole board row-major, one row per line.
func (that *Board[T]) String() string {
	rows := make([]string, that.size)
	for row := range that.matrix {
		rendered, _ := that.RenderRow(row)
		rows[row] = rendered
	}

	return strings.Join(rows, "\n")
}

func (that *Board[T]) checkBounds(row, column int) error {
	if row < 0 || row >= that.size || column < 0 || column >= that.size {
		return fmt.Errorf("%w: row %d, column %d, size %d", ErrOutOfBounds, row, column, that.size)
	}

	return nil
}
