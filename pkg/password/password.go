package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest. The salt and cost factor are embedded
// in the digest, so Verify needs no external state.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored digest. A wrong password
// is not an error, just false.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
