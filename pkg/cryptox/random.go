package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// PasswordAlphabet is used for generated temporary passwords.
	PasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%"

	// TemporaryPasswordLength is the length of passwords issued to clients
	// created by an admin.
	TemporaryPasswordLength = 16
)

var ErrEmptyAlphabet = errors.New("cryptox: empty alphabet")

// RandomString draws n characters uniformly from alphabet using crypto/rand.
func RandomString(alphabet string, n int) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("cryptox: random: %w", err)
		}
		out[i] = alphabet[v.Int64()]
	}
	return string(out), nil
}

// GeneratePassword returns a random temporary password.
func GeneratePassword() (string, error) {
	return RandomString(PasswordAlphabet, TemporaryPasswordLength)
}
