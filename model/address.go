package model

import (
	"fmt"
	"strings"
)

// Address is the shared postal-address value object. It carries no resource
// metadata: addresses are only ever embedded in other entities, never
// addressed directly on the API.
type Address struct {
	Name             *string
	Address          *string
	SecondaryAddress *string
	PostalCode       *string
	City             *string
	Country          *string
}

// NewAddress validates and returns a copy of the given address. A street
// address requires a two-letter uppercase country code.
func NewAddress(address Address) (*Address, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}
	out := address
	return &out, nil
}

func (a Address) Validate() error {
	if a.Address == nil {
		return nil
	}
	return ValidateCountryCode(derefString(a.Country))
}

// IsEmpty reports whether every field is unset. Surrounding logic uses this
// to decide whether a delivery address should be omitted entirely.
func (a *Address) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Name == nil &&
		a.Address == nil &&
		a.SecondaryAddress == nil &&
		a.PostalCode == nil &&
		a.City == nil &&
		a.Country == nil
}

// ValidateCountryCode rejects anything but an exactly-two-character
// uppercase ISO country code.
func ValidateCountryCode(code string) error {
	if len(code) != 2 {
		return fmt.Errorf("model: country code %q is not 2 characters", code)
	}
	if strings.ToUpper(code) != code {
		return fmt.Errorf("model: country code %q is not uppercase", code)
	}
	return nil
}
