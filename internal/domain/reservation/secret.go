package reservation

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
	"math/big"
	"strings"
)

const (
	Alphabet       = "abcdefghijklmnopqrstuvwxyz0123456789"
	CodeLength     = 10
	PasswordLength = 6
)

// Code is the public lookup key shared with the client.
type Code struct {
	value string
}

func NewCode() (Code, error) {
	s, err := randomString(rand.Reader, CodeLength)
	if err != nil {
		return Code{}, err
	}
	return Code{value: s}, nil
}

// ParseCode accepts codes typed by a person, so surrounding whitespace and case are ignored.
func ParseCode(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !inAlphabet(s, CodeLength) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}

type Password struct {
	value string
}

func NewPassword() (Password, error) {
	s, err := randomString(rand.Reader, PasswordLength)
	if err != nil {
		return Password{}, err
	}
	return Password{value: s}, nil
}

func ReconstructPassword(s string) Password {
	return Password{value: s}
}

func (p Password) Value() string {
	return p.value
}

// Matches compares trimmed, lower-cased input with the stored password.
func (p Password) Matches(input string) bool {
	if p.value == "" {
		return false
	}
	candidate := strings.ToLower(strings.TrimSpace(input))
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(p.value)) == 1
}

func randomString(src io.Reader, n int) (string, error) {
	limit := big.NewInt(int64(len(Alphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(src, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(Alphabet[idx.Int64()])
	}
	return sb.String(), nil
}

func inAlphabet(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
