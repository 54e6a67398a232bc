// Package config provides admin API key hashing and verification.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AdminKeyConfig holds the bcrypt-hashed admin API key that guards the
// reprocess trigger. Only the hash is kept in configuration.
type AdminKeyConfig struct {
	KeyHash    string
	BcryptCost int
}

// NewAdminKeyConfig creates an admin key configuration from environment
// variables. It reads ADMIN_KEY_HASH (required) and BCRYPT_COST
// (default: 12, used only when hashing a new key).
func NewAdminKeyConfig() (*AdminKeyConfig, error) {
	keyHash := os.Getenv("ADMIN_KEY_HASH")
	if keyHash == "" {
		return nil, fmt.Errorf("ADMIN_KEY_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &AdminKeyConfig{KeyHash: keyHash, BcryptCost: cost}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize validates the configuration.
func (c *AdminKeyConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashKey hashes an admin API key using bcrypt, for provisioning.
func (c *AdminKeyConfig) HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hash), nil
}

// VerifyKey verifies a presented admin API key against the stored hash.
func (c *AdminKeyConfig) VerifyKey(key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
}
