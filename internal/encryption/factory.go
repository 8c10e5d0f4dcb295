package encryption

import (
	"fmt"

	"dareme/internal/config"
	"dareme/internal/dareme"
)

// NewEncryptorFromConfig creates an Encryptor based on the backup config type.
func NewEncryptorFromConfig(cfg config.BackupConfig) (dareme.Encryptor, error) {
	switch cfg.Type {
	case "age", "":
		return NewAgeEncryptor(cfg), nil
	case "test":
		return NewTestEncryptor(), nil
	case "none":
		return NoneEncryptor{}, nil
	default:
		return nil, fmt.Errorf("unknown backup encryption type: %q", cfg.Type)
	}
}
