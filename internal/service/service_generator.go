// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/nstepura/go-secure-vault/models"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>?"

	// Visually ambiguous characters dropped when ExcludeSimilar is set.
	similarChars = "Il1O0o5S2Z8B"
)

type passwordGenerator struct{}

// NewPasswordGenerator returns a generator backed by crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{}
}

// Generate builds a password of policy.Length characters. One character
// from every enabled class is placed first so the guarantee holds even
// at minimal lengths, the remainder is drawn from the union of all
// enabled classes, and the result is shuffled so the mandatory
// characters do not cluster at the front.
func (g *passwordGenerator) Generate(policy models.PasswordPolicy) (string, error) {
	if policy.Length <= 0 {
		return "", ErrBadLength
	}

	var classes []string
	for _, set := range []struct {
		enabled bool
		chars   string
	}{
		{policy.IncludeUppercase, uppercaseChars},
		{policy.IncludeLowercase, lowercaseChars},
		{policy.IncludeNumbers, numberChars},
		{policy.IncludeSymbols, symbolChars},
	} {
		if !set.enabled {
			continue
		}
		chars := set.chars
		if policy.ExcludeSimilar {
			chars = stripSimilar(chars)
		}
		if chars != "" {
			classes = append(classes, chars)
		}
	}

	if len(classes) == 0 {
		return "", ErrEmptyPolicy
	}
	if policy.Length < len(classes) {
		return "", fmt.Errorf("%w: length %d cannot cover %d required classes", ErrBadLength, policy.Length, len(classes))
	}

	password := make([]byte, 0, policy.Length)
	for _, chars := range classes {
		ch, err := randomChar(chars)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	pool := strings.Join(classes, "")
	for len(password) < policy.Length {
		ch, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

func stripSimilar(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if !strings.ContainsRune(similarChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomChar(chars string) (byte, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
	if err != nil {
		return 0, fmt.Errorf("read random index: %w", err)
	}
	return chars[idx.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle using crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("read random index: %w", err)
		}
		b[i], b[j.Int64()] = b[j.Int64()], b[i]
	}
	return nil
}
