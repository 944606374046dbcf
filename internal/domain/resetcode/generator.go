package resetcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

var ErrInvalidCode = errors.New("reset code must be six digits")

const (
	minCode = 100000
	maxCode = 999999
)

//go:generate mockgen -source=generator.go -destination=../../../tests/mock/resetcode/generator.go -package=resetcodemock

type Generator interface {
	Generate() (string, error)
}

type CryptoGenerator struct{}

func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

// Generate returns a uniformly distributed code in [100000, 999999].
func (CryptoGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}

func IsWellFormed(code string) bool {
	if len(code) != 6 {
		return false
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= minCode && n <= maxCode
}
