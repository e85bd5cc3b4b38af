package types

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StaffRatio is the staff-to-client ratio a shift is rostered with.
//
// 1:2 means one staff member supporting two clients, 2:1 means two staff
// members supporting one client.
type StaffRatio string

const (
	RatioOneToOne   StaffRatio = "1:1"
	RatioOneToTwo   StaffRatio = "1:2"
	RatioOneToThree StaffRatio = "1:3"
	RatioOneToFour  StaffRatio = "1:4"
	RatioTwoToOne   StaffRatio = "2:1"
)

// StaffRatios returns all valid staff ratios.
func StaffRatios() []StaffRatio {
	return []StaffRatio{RatioOneToOne, RatioOneToTwo, RatioOneToThree, RatioOneToFour, RatioTwoToOne}
}

// ParseStaffRatio parses a string into a StaffRatio.
func ParseStaffRatio(s string) (StaffRatio, error) {
	r := StaffRatio(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStaffRatio, s)
	}

	return r, nil
}

// Valid reports whether the ratio is one of the known staff ratios.
func (r StaffRatio) Valid() bool {
	switch r {
	case RatioOneToOne, RatioOneToTwo, RatioOneToThree, RatioOneToFour, RatioTwoToOne:
		return true
	}

	return false
}

func (r StaffRatio) String() string {
	return string(r)
}

// Multiplier returns the cost-sharing multiplier for the ratio.
//
// Shared ratios bill only the client's share of the staff member, 2:1
// bills both staff members.
func (r StaffRatio) Multiplier() (decimal.Decimal, error) {
	switch r {
	case RatioOneToOne:
		return decimal.NewFromFloat(1.00), nil
	case RatioOneToTwo:
		return decimal.NewFromFloat(0.60), nil
	case RatioOneToThree:
		return decimal.NewFromFloat(0.40), nil
	case RatioOneToFour:
		return decimal.NewFromFloat(0.30), nil
	case RatioTwoToOne:
		return decimal.NewFromFloat(2.00), nil
	}

	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidStaffRatio, string(r))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown ratios are an error at parse time.
func (r *StaffRatio) UnmarshalJSON(data []byte) error {
	parsed, err := ParseStaffRatio(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// Scan reads the value from the database. NULL scans to the empty value.
func (r *StaffRatio) Scan(value interface{}) error {
	if value == nil {
		*r = ""
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidStaffRatio, value)
	}

	parsed, err := ParseStaffRatio(s)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The empty value is written as NULL, anything else has to be valid.
func (r StaffRatio) Value() (driver.Value, error) {
	if r == "" {
		return nil, nil
	}

	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStaffRatio, string(r))
	}

	return string(r), nil
}

// GormDataType defines the data type used by gorm for the type.
func (StaffRatio) GormDataType() string {
	return "string"
}
