// Package types provides codecs that validate untyped input, such as
// decoded JSON values, and convert it to Go values.
package types

// Type decodes untyped input into a T and encodes a T back to its wire form.
//
// Decode must not return a partially decoded value: on failure the zero T is
// returned together with an error, usually a *FormatError.
type Type[T any] interface {
	Decode(input any) (T, error)
	Encode(value T) any
}
