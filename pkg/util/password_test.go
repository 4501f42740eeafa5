package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "Password1!"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Hashing the same password twice produces different hashes (salt)
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	password := "Password1!"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "Correct password",
			password: password,
			want:     true,
		},
		{
			name:     "Wrong password",
			password: "WrongPass1!",
			want:     false,
		},
		{
			name:     "Empty password",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(hash, tt.password))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "Valid password",
			password: "Password1!",
			wantErr:  nil,
		},
		{
			name:     "Minimum length",
			password: "Abcdef!g",
			wantErr:  nil,
		},
		{
			name:     "Maximum length",
			password: "Abcdefghijklmn!p",
			wantErr:  nil,
		},
		{
			name:     "Too short",
			password: "Abc!def",
			wantErr:  ErrPasswordLength,
		},
		{
			name:     "Too long",
			password: "Abcdefghijklmno!q",
			wantErr:  ErrPasswordLength,
		},
		{
			name:     "Missing uppercase",
			password: "password1!",
			wantErr:  ErrPasswordUppercase,
		},
		{
			name:     "Missing special character",
			password: "Password12",
			wantErr:  ErrPasswordSpecial,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  ErrPasswordLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
