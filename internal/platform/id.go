package platform

import (
	"crypto/rand"

	"github.com/google/uuid"
)

const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const shortIDLength = 10

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func NewID() string {
	return uuid.New().String()
}

// NewName returns prefix plus a 10-character random suffix. The suffix is
// lowercase alphanumeric so the result is valid for Azure resource names,
// which must start with a letter when the prefix does.
func NewName(prefix string) string {
	return NewNameN(prefix, shortIDLength)
}

// NewNameN is NewName with a caller-chosen suffix length, for resource types
// with tighter length limits (certificate order names, domain labels).
func NewNameN(prefix string, n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	for i := range b {
		b[i] = shortIDAlphabet[b[i]%byte(len(shortIDAlphabet))]
	}
	return prefix + string(b)
}

// NewPassword returns a random mixed-case alphanumeric password of length n.
func NewPassword(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	for i := range b {
		b[i] = passwordAlphabet[b[i]%byte(len(passwordAlphabet))]
	}
	return string(b)
}
