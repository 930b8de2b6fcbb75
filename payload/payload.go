// Package payload decodes untyped records, such as parsed JSON objects, into
// structs. Timestamp fields are validated with types.TimestampType.
package payload

import (
	"reflect"
	"time"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-types-go/internal/decode"
	"github.com/weegigs/wee-types-go/types"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	timestampType = reflect.TypeOf(types.Timestamp(""))
)

// TimestampHook decodes time.Time and types.Timestamp destinations with
// types.TimestampType.
func TimestampHook() mapstructure.DecodeHookFuncType {
	codec := types.TimestampType{}

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		switch to {
		case timeType:
			if decoded, ok := data.(time.Time); ok {
				return decoded, nil
			}
			return codec.Decode(data)
		case timestampType:
			switch value := data.(type) {
			case string:
				return types.ParseTimestamp(value)
			case types.Timestamp:
				return types.ParseTimestamp(string(value))
			default:
				_, err := codec.Decode(data)
				return nil, err
			}
		default:
			return data, nil
		}
	}
}

// Decode copies input into the struct pointed to by output. Keys with no
// matching field are an error. The returned error reports every failing
// field; when a timestamp field failed, its *types.FormatError is reachable
// with errors.As.
func Decode(input map[string]any, output any) error {
	if _, err := decode.StructTarget(output); err != nil {
		return err
	}

	// mapstructure flattens hook errors into strings, so the first timestamp
	// failure is kept to preserve its type.
	var failure error
	hook := TimestampHook()
	config := &mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      output,
		DecodeHook: func(from reflect.Type, to reflect.Type, data any) (any, error) {
			value, err := hook(from, to, data)
			if err != nil && failure == nil {
				failure = err
			}
			return value, err
		},
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return errors.Wrap(err, "failed to create payload decoder")
	}

	if err := decoder.Decode(input); err != nil {
		if failure != nil {
			err = &fieldErrors{err: err, cause: failure}
		}
		return errors.Wrap(err, "failed to decode payload")
	}

	return nil
}

// Unmarshal parses a JSON object and decodes it into output.
func Unmarshal(data []byte, output any) error {
	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return errors.Wrap(err, "payload is not a JSON object")
	}

	return Decode(input, output)
}

// fieldErrors keeps mapstructure's aggregated message while exposing the
// typed timestamp failure it flattened.
type fieldErrors struct {
	err   error
	cause error
}

func (e *fieldErrors) Error() string {
	return e.err.Error()
}

func (e *fieldErrors) Unwrap() error {
	return e.cause
}
