package auth

import "golang.org/x/crypto/bcrypt"

// Passwords are stored bcrypt-hashed. The app this replaces compared
// plaintext credentials against the users table; do not carry that over.

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ComparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
