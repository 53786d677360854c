// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher provides one-way salted password hashing built on bcrypt.
//
// Every Hash call generates a fresh random salt, so hashing the same
// plaintext twice yields different encoded strings; Verify recomputes using
// the salt embedded in the stored hash and compares in constant time.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a PasswordHasher with the given bcrypt cost
// factor. A non-positive cost falls back to bcrypt.DefaultCost (10), the
// work factor used by the registration flow.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
//
// A failure here (entropy source unavailable, input longer than bcrypt's
// 72-byte limit) must abort the calling operation: the caller may never
// fall back to persisting the plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time; the hash is never reversed.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
