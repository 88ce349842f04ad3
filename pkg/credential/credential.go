// Package credential isolates password verification behind a capability so
// the comparison scheme can be swapped without touching service call sites.
package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("credentials do not match")

type Verifier interface {
	Verify(stored string, provided string) error
}

type plaintextVerifier struct{}

// NewPlaintext returns the default verifier: exact string equality against
// the stored password. An unset stored password never matches.
func NewPlaintext() Verifier {
	return &plaintextVerifier{}
}

func (v *plaintextVerifier) Verify(stored string, provided string) error {
	if stored == "" || stored != provided {
		return ErrMismatch
	}
	return nil
}

type bcryptVerifier struct{}

// NewBcrypt returns a verifier that treats the stored password as a bcrypt
// hash. Drop-in replacement for NewPlaintext once credentials are migrated.
func NewBcrypt() Verifier {
	return &bcryptVerifier{}
}

func (v *bcryptVerifier) Verify(stored string, provided string) error {
	if stored == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)); err != nil {
		return ErrMismatch
	}
	return nil
}

// Hash produces a bcrypt hash for the bcrypt verifier. Unused by the default
// plaintext scheme.
func Hash(password string) (string, error) {
	result, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(result), nil
}
