package board

import "encoding/json"

// Optional - holds either a present value or nothing. It is the interchange
// unit for a space's content: every constructor and accessor on Space is
// defined in terms of it.
type Optional[T any] struct {
	value   T
	present bool
}

// Some - returns an optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None - returns an absent optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Value - returns the held value and whether it is present.
// The value is the zero value of T when absent.
func (that Optional[T]) Value() (T, bool) {
	return that.value, that.present
}

func (that Optional[T]) IsPresent() bool {
	return that.present
}

// MarshalJSON - a present optional marshals as its value, an absent one as null.
func (that Optional[T]) MarshalJSON() ([]byte, error) {
	if !that.present {
		return []byte("null"), nil
	}

	return json.Marshal(that.value)
}

func (that *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*that = Some(value)

	return nil
}
