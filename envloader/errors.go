package envloader

import (
	"fmt"
	"reflect"
)

// InvalidConfigError is returned when Load receives something other than a
// pointer to a struct.
type InvalidConfigError struct {
	Value reflect.Type
}

func (e *InvalidConfigError) Error() string {
	if e.Value.Kind() != reflect.Ptr {
		return fmt.Sprintf("envloader: config must be a pointer to struct, got %s", e.Value.Kind())
	}
	return fmt.Sprintf("envloader: config must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
}

// MissingEnvError is returned when a variable tagged as required is unset and
// the field has no envDefault.
type MissingEnvError struct {
	FieldName string
	EnvVar    string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("envloader: required environment variable %s (field %s) is not set", e.EnvVar, e.FieldName)
}

// FieldError wraps a conversion failure while setting a single field.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Err       error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("envloader: error setting field %s from env %s=%s: %v",
		e.FieldName, e.EnvVar, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned for field types the loader cannot convert
// (maps, slices, interfaces).
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envloader: unsupported type %s", e.Type)
}
