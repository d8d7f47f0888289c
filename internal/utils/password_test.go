// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(bcrypt.MinCost).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).Cost())
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("testpass123")
	require.NoError(t, err)

	assert.NotEqual(t, "testpass123", hash)
	assert.True(t, h.Compare(hash, "testpass123"))
	assert.False(t, h.Compare(hash, "wrongpass"))
	assert.False(t, h.Compare(hash, ""))
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.Error(t, err)
}

func TestPasswordHasher_UnusableHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	unusable, err := h.UnusableHash()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(unusable, models.UnusablePasswordPrefix))
	assert.Len(t, unusable, 1+unusableSuffixLength)
	assert.False(t, h.Compare(unusable, ""))
	assert.False(t, h.Compare(unusable, unusable))
	assert.False(t, models.User{PasswordHash: unusable}.HasUsablePassword())

	other, err := h.UnusableHash()
	require.NoError(t, err)
	assert.NotEqual(t, unusable, other)
}

func TestPasswordHasher_DummyCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		h.DummyCompare("anything")
		h.DummyCompare("")
	})
}
