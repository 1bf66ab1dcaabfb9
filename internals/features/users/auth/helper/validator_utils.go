package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegisterInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Nama wajib diisi")
	}
	if len(strings.TrimSpace(name)) < 3 {
		return errors.New("Nama minimal 3 karakter")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("Format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("Password minimal 8 karakter")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("Email dan password wajib diisi")
	}
	return nil
}
