package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// Time is a point in time that is transmitted as an RFC 3339 string.
//
// Decoding errors are reported as *json.UnmarshalTypeError so that they
// can be attributed to the field that contains them.
type Time struct {
	time.Time
}

var timeType = reflect.TypeOf(Time{})

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Time) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "null" {
		return nil
	}

	if !strings.HasPrefix(value, `"`) {
		return &json.UnmarshalTypeError{Value: jsonKind(value), Type: timeType}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: timeType}
	}

	t.Time = parsed
	return nil
}
