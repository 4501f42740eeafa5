package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "Valid name",
			input:   "Johnathan Maxwell Stoneridge",
			wantErr: nil,
		},
		{
			name:    "Exactly minimum length",
			input:   strings.Repeat("a", 20),
			wantErr: nil,
		},
		{
			name:    "Exactly maximum length",
			input:   strings.Repeat("a", 60),
			wantErr: nil,
		},
		{
			name:    "One below minimum",
			input:   strings.Repeat("a", 19),
			wantErr: ErrNameLength,
		},
		{
			name:    "One above maximum",
			input:   strings.Repeat("a", 61),
			wantErr: ErrNameLength,
		},
		{
			name:    "Empty name",
			input:   "",
			wantErr: ErrNameLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "Valid email",
			input:   "user@example.com",
			wantErr: nil,
		},
		{
			name:    "Valid email with subdomain",
			input:   "user@mail.example.com",
			wantErr: nil,
		},
		{
			name:    "Missing at sign",
			input:   "userexample.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "Missing domain dot",
			input:   "user@example",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "Contains whitespace",
			input:   "user name@example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "Empty email",
			input:   "",
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "Valid address",
			input:   "123 Main Street, Springfield",
			wantErr: nil,
		},
		{
			name:    "Empty address is allowed",
			input:   "",
			wantErr: nil,
		},
		{
			name:    "Exactly maximum length",
			input:   strings.Repeat("a", 400),
			wantErr: nil,
		},
		{
			name:    "One above maximum",
			input:   strings.Repeat("a", 401),
			wantErr: ErrAddressTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
