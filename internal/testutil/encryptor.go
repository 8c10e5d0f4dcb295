package testutil

import (
	"dareme/internal/dareme"
	"dareme/internal/encryption"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() dareme.Encryptor {
	return encryption.NewTestEncryptor()
}
