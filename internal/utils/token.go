// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenKeyBytes is the entropy of an auth token key; hex-encoded it yields
// 40 characters.
const tokenKeyBytes = 20

// GenerateTokenKey returns a new random auth token key.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
