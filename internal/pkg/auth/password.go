package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor used for stored credentials.
const BcryptCost = 10

// HashPassword hashes a plaintext password with a fresh salt. The same
// plaintext yields a different hash on every call.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A malformed hash yields false, never an error or a panic.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
