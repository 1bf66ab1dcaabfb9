package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name     string
		inName   string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "Budi Santoso", "budi@example.com", "rahasia123", ""},
		{"nama kosong", "   ", "budi@example.com", "rahasia123", "Nama wajib diisi"},
		{"nama terlalu pendek", "Bu", "budi@example.com", "rahasia123", "Nama minimal 3 karakter"},
		{"email tanpa domain", "Budi", "budi@", "rahasia123", "Format email tidak valid"},
		{"email tanpa at", "Budi", "budi.example.com", "rahasia123", "Format email tidak valid"},
		{"password pendek", "Budi", "budi@example.com", "1234567", "Password minimal 8 karakter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterInput(tt.inName, tt.email, tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi@example.com", "rahasia123"))
	assert.Error(t, ValidateLoginInput("", "rahasia123"))
	assert.Error(t, ValidateLoginInput("budi@example.com", ""))
	assert.Error(t, ValidateLoginInput("   ", ""))
}
