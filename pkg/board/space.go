// Package board is a generic board data model: a fixed-size square grid of
// spaces, each holding zero or one element of an arbitrary type. Game rules,
// turn logic, and presentation live in the collaborators that consume it.
package board

import (
	"errors"
	"fmt"
)

var (
	ErrNoElement         = errors.New("space has no element")
	ErrOutOfBounds       = errors.New("coordinate is out of bounds")
	ErrDimensionMismatch = errors.New("matrix dimensions do not match board size")
	ErrInvalidSize       = errors.New("board size must be positive")
)

// Cell - the minimal capability every space representation satisfies.
// Space implements the full read/write contract on top of it; EmptySpace
// implements nothing else.
type Cell interface {
	fmt.Stringer
	IsEmpty() bool
}

// Space - a single board cell that may or may not contain an element.
// A space is always either empty or occupied by exactly one element;
// the zero value is an empty space.
type Space[T any] struct {
	element Optional[T]
}

// NewSpace - creates an empty space.
func NewSpace[T any]() Space[T] {
	return Space[T]{}
}

// SpaceWithElement - creates a space occupied by the given element.
func SpaceWithElement[T any](element T) Space[T] {
	return SpaceFromOptional(Some(element))
}

// SpaceFromOptional - creates a space mirroring the given optional exactly:
// absent makes an empty space, present makes an occupied one.
func SpaceFromOptional[T any](element Optional[T]) Space[T] {
	return Space[T]{element: element}
}

// AsOptional - returns the current content without mutating the space.
func (that Space[T]) AsOptional() Optional[T] {
	return that.element
}

func (that Space[T]) IsEmpty() bool {
	return !that.element.IsPresent()
}

func (that Space[T]) HasElement() bool {
	return !that.IsEmpty()
}

// Element - returns the element, or ErrNoElement when the space is empty.
// For call sites that have already established occupancy; otherwise prefer
// AsOptional or IsEmpty.
func (that Space[T]) Element() (T, error) {
	element, ok := that.element.Value()
	if !ok {
		return element, ErrNoElement
	}

	return element, nil
}

// SetOptionalElement - replaces the content with the given optional.
// This is the sole mutation primitive; SetElement and Clear delegate to it.
func (that *Space[T]) SetOptionalElement(element Optional[T]) {
	that.element = element
}

func (that *Space[T]) SetElement(element T) {
	that.SetOptionalElement(Some(element))
}

// Clear - removes the element from the space, making it empty.
func (that *Space[T]) Clear() {
	that.SetOptionalElement(None[T]())
}

// String - an occupied space renders as |<element>|, an empty one as "| |".
// Downstream display and tests depend on this exact format.
func (that Space[T]) String() string {
	return "|" + that.content() + "|"
}

// content - the text between the pipes: the element, or a single space.
func (that Space[T]) content() string {
	element, ok := that.element.Value()
	if !ok {
		return " "
	}

	return fmt.Sprint(element)
}

func (that Space[T]) MarshalJSON() ([]byte, error) {
	return that.element.MarshalJSON()
}

func (that *Space[T]) UnmarshalJSON(data []byte) error {
	return that.element.UnmarshalJSON(data)
}
