package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"pharma-dashboard/pkg/validator"

	"github.com/shopspring/decimal"
)

// Nullable is a patch field with three states: absent (Set == false),
// explicit null (Set && !Valid) and a value (Set && Valid).
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NullableOf returns a Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null returns a Nullable that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ApplyTo overwrites dst according to the three-state semantics.
func (n Nullable[T]) ApplyTo(dst **T) {
	if !n.Set {
		return
	}
	if !n.Valid {
		*dst = nil
		return
	}
	v := n.Value
	*dst = &v
}

func (n Nullable[T]) ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func init() {
	validator.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(Nullable[decimal.Decimal]).ptr()
	}, Nullable[decimal.Decimal]{})
	validator.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(Nullable[time.Time]).ptr()
	}, Nullable[time.Time]{})
}
