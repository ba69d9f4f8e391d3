package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt hash with a fresh random salt, so hashing
// the same password twice yields different stored values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash simply fails the check.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
