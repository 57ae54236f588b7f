package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher creates a hasher. A cost outside bcrypt's range falls back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("kubera-dummy-password"), cost)
	if err != nil {
		panic(fmt.Sprintf("bcrypt: %v", err))
	}
	return &BcryptHasher{cost: cost, dummyHash: dummy}
}

// Hash returns the bcrypt hash of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash
func (h *BcryptHasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyVerify burns the same time as a real comparison. Used when the user
// does not exist so response time does not reveal which emails are registered.
func (h *BcryptHasher) DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
