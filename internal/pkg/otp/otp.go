package otp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/pquerna/otp"
)

// ErrUnsupportedDigits is returned for code widths other than 4 or 6.
var ErrUnsupportedDigits = errors.New("otp: digits must be 4 or 6")

// Generator produces fixed-width numeric passcodes.
type Generator interface {
	Generate() (string, error)
}

// Numeric is a Generator backed by a cryptographically secure random source.
type Numeric struct {
	digits otp.Digits
	limit  *big.Int
	random io.Reader
}

// NewNumeric returns a generator for codes of the given width.
func NewNumeric(digits int) (*Numeric, error) {
	if digits != 4 && digits != int(otp.DigitsSix) {
		return nil, ErrUnsupportedDigits
	}

	return &Numeric{
		digits: otp.Digits(digits),
		limit:  new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil),
		random: rand.Reader,
	}, nil
}

// Digits returns the width of generated codes.
func (n *Numeric) Digits() int {
	return n.digits.Length()
}

// Generate returns a zero-padded code in [0, 10^digits).
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(n.random, n.limit)
	if err != nil {
		return "", err
	}

	return n.digits.Format(int32(v.Int64())), nil
}
