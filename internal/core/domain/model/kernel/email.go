package kernel

import (
	"net/mail"

	"orders/internal/pkg/errs"
)

// Email is a value object for a validated email address. Addresses are stored
// exactly as supplied (case-sensitive); uniqueness is enforced by the record
// store on the stored form.
//
// The zero value is invalid and must be constructed via NewEmail.
type Email struct {
	address string
}

// NewEmail validates the given string as a bare email address ("user@host",
// no display name) and returns it as a value object.
func NewEmail(address string) (Email, error) {
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return Email{}, errs.NewValueIsInvalidError("email")
	}

	return Email{address: address}, nil
}

// String returns the address exactly as it was supplied.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two email addresses byte for byte.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// Validate checks that the Email was constructed via NewEmail.
func (e Email) Validate() error {
	if e.address == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
