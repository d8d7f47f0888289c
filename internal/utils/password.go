// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

const (
	unusableSuffixLength = 40
	unusableAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// PasswordHasher hashes and verifies account passwords with bcrypt.
//
// The zero value is not usable; construct it with [NewPasswordHasher].
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher returns a hasher using the given bcrypt cost. Costs out of
// bcrypt's accepted range fall back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the bcrypt work factor in use.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the salted bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. Unusable hashes and empty
// passwords never match.
func (h *PasswordHasher) Compare(hash, password string) bool {
	if password == "" || hash == "" || strings.HasPrefix(hash, models.UnusablePasswordPrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCompare spends the same time as a real comparison and always fails.
// It is used when no account exists for the supplied login.
func (h *PasswordHasher) DummyCompare(password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}

// UnusableHash returns a stored password value that no plaintext matches.
func (h *PasswordHasher) UnusableHash() (string, error) {
	buf := make([]byte, unusableSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating unusable password: %w", err)
	}
	for i, b := range buf {
		buf[i] = unusableAlphabet[int(b)%len(unusableAlphabet)]
	}
	return models.UnusablePasswordPrefix + string(buf), nil
}
