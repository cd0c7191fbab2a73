package validation

import (
	"strings"
)

var commonPasswords = []string{
	"password", "123456", "qwerty", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

// ValidatePassword checks a plaintext password before it is hashed.
// bcrypt ignores everything past 72 bytes, so longer inputs are rejected.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return NewError("password", "must be at least 8 characters")
	}

	if len(password) > 72 {
		return NewError("password", "must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPasswords {
		if strings.Contains(lower, pattern) {
			return NewError("password", "is too common, please choose a stronger one")
		}
	}

	return nil
}
