package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// FundingCategory is an NDIS funding category a budget holds a balance for.
type FundingCategory string

const (
	CategorySIL              FundingCategory = "SIL"
	CategoryCommunityAccess  FundingCategory = "CommunityAccess"
	CategoryCapacityBuilding FundingCategory = "CapacityBuilding"
)

// FundingCategories returns all valid funding categories.
func FundingCategories() []FundingCategory {
	return []FundingCategory{CategorySIL, CategoryCommunityAccess, CategoryCapacityBuilding}
}

// ParseFundingCategory parses a string into a FundingCategory.
func ParseFundingCategory(s string) (FundingCategory, error) {
	c := FundingCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFundingCategory, s)
	}

	return c, nil
}

// Valid reports whether the category is one of the known funding categories.
func (c FundingCategory) Valid() bool {
	switch c {
	case CategorySIL, CategoryCommunityAccess, CategoryCapacityBuilding:
		return true
	}

	return false
}

func (c FundingCategory) String() string {
	return string(c)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown categories are an error at parse time.
func (c *FundingCategory) UnmarshalJSON(data []byte) error {
	parsed, err := ParseFundingCategory(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Scan reads the value from the database. NULL scans to the empty value.
func (c *FundingCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ""
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidFundingCategory, value)
	}

	parsed, err := ParseFundingCategory(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The empty value is written as NULL, anything else has to be valid.
func (c FundingCategory) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}

	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFundingCategory, string(c))
	}

	return string(c), nil
}

// GormDataType defines the data type used by gorm for the type.
func (FundingCategory) GormDataType() string {
	return "string"
}
