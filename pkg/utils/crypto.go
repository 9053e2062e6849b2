package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for stored credentials.
const hashCost = 10

// HashPassword returns the salted bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether the password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
