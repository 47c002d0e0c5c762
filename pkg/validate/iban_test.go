package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIBAN(t *testing.T) {
	tests := []struct {
		name  string
		iban  string
		valid bool
	}{
		{
			name:  "Valid French IBAN",
			iban:  "FR1420041010050500013M02606",
			valid: true,
		},
		{
			name:  "Valid German IBAN",
			iban:  "DE89370400440532013000",
			valid: true,
		},
		{
			name:  "Spaces and lowercase are normalized",
			iban:  "fr14 2004 1010 0505 0001 3m02 606",
			valid: true,
		},
		{
			name:  "Bad checksum",
			iban:  "FR1520041010050500013M02606",
			valid: false,
		},
		{
			name:  "Too short",
			iban:  "FR14",
			valid: false,
		},
		{
			name:  "Too long",
			iban:  "FR1420041010050500013M02606000000000000",
			valid: false,
		},
		{
			name:  "Illegal characters",
			iban:  "FR14-2004-1010-0505-00013M02606",
			valid: false,
		},
		{
			name:  "Empty string",
			iban:  "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsIBAN(tt.iban))
		})
	}
}
