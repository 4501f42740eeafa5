package util

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

var (
	ErrPasswordLength    = errors.New("password must be 8-16 characters long")
	ErrPasswordUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordSpecial   = errors.New("password must contain at least one special character")
)

// HashPassword hashes a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks if a plain text password matches a hashed password
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// ValidatePassword enforces the account password policy: 8-16 characters
// with at least one uppercase letter and one special character. It runs
// before hashing on every create and password-change path.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return ErrPasswordLength
	}

	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return ErrPasswordUppercase
	}

	if !strings.ContainsAny(password, specialChars) {
		return ErrPasswordSpecial
	}

	return nil
}
