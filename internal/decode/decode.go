package decode

import (
	"errors"
	"fmt"
	"reflect"
)

// StructTarget returns the struct v points to, or an error when v is not a
// non-nil pointer to a struct.
func StructTarget(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.New("decode target must be a non-nil pointer")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("decode target must be a pointer, not %s", rv.Kind())
	}

	if rv.IsNil() {
		return reflect.Value{}, errors.New("decode target must be a non-nil pointer")
	}

	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("decode target must point to a struct, not %s", elem.Kind())
	}

	return elem, nil
}
