package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// hashPassword derives the salted bcrypt hash stored in place of the
// plaintext credential
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.NewInternalError("failed to hash password", err)
	}
	return string(hashed), nil
}

// checkPassword compares a plaintext credential against a stored hash
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
