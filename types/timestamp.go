package types

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// RFC3339Milli is the canonical Timestamp layout. Formatting a UTC time with
// it always yields the Z designator.
const RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?(Z|[+-]\d{2}:\d{2})$`)

// Timestamp is the wire form of a UTC instant.
type Timestamp string

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(RFC3339Milli))
}

// ParseTimestamp validates raw and returns it unchanged as a Timestamp.
func ParseTimestamp(raw string) (Timestamp, error) {
	if _, err := decodeTimestamp(raw); err != nil {
		return "", err
	}
	return Timestamp(raw), nil
}

func (ts Timestamp) Time() (time.Time, error) {
	return decodeTimestamp(string(ts))
}

func (ts Timestamp) String() string {
	return string(ts)
}

func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts), nil
}

func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// TimestampType decodes RFC3339 date-times that use the UTC designator Z.
// Numeric offsets are rejected even when they are zero.
type TimestampType struct{}

var _ Type[time.Time] = TimestampType{}

func (TimestampType) TypeName() string {
	return "timestamp"
}

func (t TimestampType) Decode(input any) (time.Time, error) {
	switch value := input.(type) {
	case string:
		return decodeTimestamp(value)
	case Timestamp:
		return decodeTimestamp(string(value))
	default:
		return time.Time{}, formatError(t, input, "expected a string")
	}
}

func (TimestampType) DecodeString(s string) (time.Time, error) {
	return decodeTimestamp(s)
}

func (TimestampType) Encode(value time.Time) any {
	return TimestampFromTime(value)
}

func decodeTimestamp(raw string) (time.Time, error) {
	match := timestampPattern.FindStringSubmatch(raw)
	if match == nil {
		return time.Time{}, formatError(TimestampType{}, raw, "not an RFC3339 date-time")
	}
	if match[2] != "Z" {
		return time.Time{}, formatError(TimestampType{}, raw, "time zone must be the UTC designator Z")
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, &FormatError{
			Type:   NameOf(TimestampType{}),
			Input:  raw,
			Reason: parseReason(err),
			Err:    err,
		}
	}

	return parsed.UTC(), nil
}

func parseReason(err error) string {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) && parseErr.Message != "" {
		return strings.TrimPrefix(parseErr.Message, ": ")
	}
	return err.Error()
}
