package app

import (
	"fmt"
	"strings"
)

const minPasswordLength = 6

// ValidateCredentials applies the thin client-side checks before a request is
// made. The backend owns real validation.
func ValidateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
