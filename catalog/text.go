package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a display value from a fixture. Numbers and booleans are kept as
// their literal JSON text and null reads as empty, so "year": 1994 and
// "year": "1994" render the same.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
		*t = ""
	case '{', '[':
		return fmt.Errorf("cannot use %s as text", data)
	default:
		// numbers, true and false
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
