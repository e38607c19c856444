package models

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state value for partial updates: a key that is absent from
// the payload leaves the stored column untouched, an explicit null clears it,
// and a value sets it.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func NewField[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

func NullField[T any]() Field[T] {
	return Field[T]{Set: true}
}

// Ptr returns the value for persistence: nil both for absent and for an
// explicit null, so it is only meaningful when Set is true.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	return &f.Value
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(data, []byte("null")) {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
