package hasher

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher reports whether a candidate is the plaintext of a password hash
type Hasher interface {
	Match(hashed, candidate string) (bool, error)
}

type Bcrypt struct{}

// Hash is used to produce fixtures for audits
func (b Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Match implements Hasher.
func (b Bcrypt) Match(hashed, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
