package rest

import (
	"bytes"
	"encoding/json"
)

// optional distinguishes an absent JSON field from an explicit null.
// Set is true whenever the key was present; Value is nil for null.
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// cleared reports whether the field was sent as null.
func (o optional[T]) cleared() bool {
	return o.Set && o.Value == nil
}
