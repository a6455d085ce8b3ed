package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrUnhashable = errors.New("password is empty or longer than 72 bytes")

// bcrypt ignores anything past 72 bytes.
const maxBytes = 72

// Hash returns the bcrypt hash stored in users.password_hash.
func Hash(plain string) (string, error) {
	if plain == "" || len(plain) > maxBytes {
		return "", ErrUnhashable
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Matches reports whether plain is the password behind hash. Empty input and
// malformed hashes never match.
func Matches(hash, plain string) bool {
	if hash == "" || plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var decoy = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("feedbackpro-decoy"), bcrypt.DefaultCost)
	return h
})

// Burn spends the time of one comparison. Login calls it for unknown emails so
// response time does not reveal which addresses are registered.
func Burn(plain string) {
	_ = bcrypt.CompareHashAndPassword(decoy(), []byte(plain))
}
