package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Tenant represents a care provider organisation.
//
// A tenant is the highest level of organization in the backend, all other
// resources reference it directly or transitively.
type Tenant struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 currency code, defaults to AUD
}

func (t Tenant) Self() string {
	return "Tenant"
}

// BeforeSave defaults the currency to AUD and verifies that it is a
// well-formed ISO 4217 code.
func (t *Tenant) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	if t.Currency == "" {
		t.Currency = "AUD"
	}

	unit, err := currency.ParseISO(t.Currency)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrTenantCurrencyInvalid, t.Currency)
	}

	t.Currency = unit.String()
	return nil
}
