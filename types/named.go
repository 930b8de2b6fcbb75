package types

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf returns the TypeName of value when it is Named, otherwise its Go
// type rendered as "package:kebab-name". A nil value is named "nil".
func NameOf(value any) string {
	if value == nil {
		return "nil"
	}

	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		s := strings.TrimLeft(segment, "*")
		segments[i] = strcase.ToKebab(s)
	}

	if len(segments) == 1 {
		return segments[0]
	}

	return segments[0] + ":" + strings.Join(segments[1:], "-")
}
