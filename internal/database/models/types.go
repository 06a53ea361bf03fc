package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IntList is a JSON-encoded list of ints stored in a jsonb column.
// Used for recurrence days-of-week (0 = Sunday .. 6 = Saturday).
type IntList []int

// Value implements driver.Valuer
func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for IntList: %T", value)
}

// Contains reports whether n is a member of the list
func (l IntList) Contains(n int) bool {
	for _, m := range l {
		if m == n {
			return true
		}
	}
	return false
}

// StringList is a JSON-encoded list of strings stored in a jsonb column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for StringList: %T", value)
}

// Contains reports whether s is a member of the list
func (l StringList) Contains(s string) bool {
	for _, m := range l {
		if m == s {
			return true
		}
	}
	return false
}
