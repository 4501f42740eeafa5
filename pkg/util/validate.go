package util

import (
	"errors"
	"regexp"
)

const (
	NameMinLength    = 20
	NameMaxLength    = 60
	AddressMaxLength = 400
)

var (
	ErrNameLength     = errors.New("name must be 20-60 characters long")
	ErrInvalidEmail   = errors.New("valid email is required")
	ErrAddressTooLong = errors.New("address must be max 400 characters")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName checks the account name length bounds
func ValidateName(name string) error {
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return ErrNameLength
	}
	return nil
}

// ValidateEmail checks basic email shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateAddress checks the address length cap. An empty address is allowed.
func ValidateAddress(address string) error {
	if len(address) > AddressMaxLength {
		return ErrAddressTooLong
	}
	return nil
}
