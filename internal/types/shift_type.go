// Package types implements special types for the carebridge backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ShiftType is the type of a rostered shift.
//
// It is a closed type: every value passing through the API or the database
// is checked against the known shift types, an unknown value is rejected
// when it is parsed, not when it is billed.
type ShiftType string

const (
	ShiftTypeAM          ShiftType = "AM"
	ShiftTypePM          ShiftType = "PM"
	ShiftTypeActiveNight ShiftType = "ActiveNight"
	ShiftTypeSleepover   ShiftType = "Sleepover"
)

// ShiftTypes returns all valid shift types.
func ShiftTypes() []ShiftType {
	return []ShiftType{ShiftTypeAM, ShiftTypePM, ShiftTypeActiveNight, ShiftTypeSleepover}
}

// ParseShiftType parses a string into a ShiftType.
func ParseShiftType(s string) (ShiftType, error) {
	t := ShiftType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidShiftType, s)
	}

	return t, nil
}

// Valid reports whether the shift type is one of the known shift types.
func (t ShiftType) Valid() bool {
	switch t {
	case ShiftTypeAM, ShiftTypePM, ShiftTypeActiveNight, ShiftTypeSleepover:
		return true
	}

	return false
}

func (t ShiftType) String() string {
	return string(t)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown shift types are an error at parse time.
func (t *ShiftType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseShiftType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Scan reads the value from the database. NULL scans to the empty value.
func (t *ShiftType) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidShiftType, value)
	}

	parsed, err := ParseShiftType(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The empty value is written as NULL, anything else has to be valid.
func (t ShiftType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}

	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShiftType, string(t))
	}

	return string(t), nil
}

// GormDataType defines the data type used by gorm for the type.
func (ShiftType) GormDataType() string {
	return "string"
}
