// Package auth is the credential store: it turns plaintext passwords into
// bcrypt hashes and verifies login attempts against them. Nothing else in
// the application touches password material.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword salts and hashes a plaintext password with bcrypt at the
// default cost. The result is irreversible.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Timing characteristics are bcrypt's own; no additional comparison happens
// outside it.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
