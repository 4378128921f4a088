package secret

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a presented admin secret against the configured one.
// A configured value starting with a bcrypt version prefix is treated as a
// hash; anything else is compared in constant time.
type Verifier struct {
	configured string
}

func NewVerifier(configured string) *Verifier {
	return &Verifier{configured: configured}
}

func (v *Verifier) Verify(presented string) bool {
	if presented == "" || v.configured == "" {
		return false
	}
	if isBcryptHash(v.configured) {
		return bcrypt.CompareHashAndPassword([]byte(v.configured), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.configured), []byte(presented)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Hash is a convenience for provisioning ADMIN_SECRET as a bcrypt hash.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
