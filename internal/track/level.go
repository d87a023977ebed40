package track

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalJSON accepts a level encoded either as a JSON string or a number.
// Providers are inconsistent about quoting numeric levels like HSK "3".
func (l *Level) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Normalize(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("level must be a string or number: %w", err)
	}
	*l = Normalize(n.String())
	return nil
}

// Normalize canonicalizes a level string: trims, upper-cases CEFR letters
// and drops a redundant ".0" suffix so 6.0 and "6" compare equal.
func Normalize(s string) Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "HSK")
	s = strings.TrimPrefix(s, "BAND")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	return Level(s)
}
