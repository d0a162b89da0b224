package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// DefaultLength is the length used for temporary account passwords.
	DefaultLength = 16
	// MinLength is the smallest length that fits one character of every class.
	MinLength = 4

	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%&*"
	alphabet  = lowercase + uppercase + digits + symbols
)

var classes = []string{lowercase, uppercase, digits, symbols}

// Generate returns a random password of the given length drawn from crypto/rand.
// The result always contains at least one lowercase letter, one uppercase
// letter, one digit and one symbol.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("password length must be at least %d, got %d", MinLength, length)
	}

	buf := make([]byte, 0, length)
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always in front.
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

func pick(set string) (byte, error) {
	i, err := randIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
