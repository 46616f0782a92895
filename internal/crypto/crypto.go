package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Hash(password string) (string, error)
	// Compare returns ErrMismatch when the password does not match the hash.
	Compare(hash, password string) error
}

// ErrMismatch is returned by Compare for a wrong password.
var ErrMismatch = bcrypt.ErrMismatchedHashAndPassword

type BcryptService struct {
	cost int
}

func NewBcryptService(cost int) BcryptService {
	return BcryptService{cost: cost}
}

func (s BcryptService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s BcryptService) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// PlainService stores passwords as-is. Test use only.
type PlainService struct{}

func (PlainService) Hash(password string) (string, error) { return password, nil }

func (PlainService) Compare(hash, password string) error {
	if hash != password {
		return ErrMismatch
	}
	return nil
}
