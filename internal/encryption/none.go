package encryption

import (
	"io"

	"dareme/internal/dareme"
)

// NoneEncryptor stores backups in plaintext. It is selected with backup
// type "none" for media stores that are already private.
type NoneEncryptor struct{}

var _ dareme.Encryptor = NoneEncryptor{}

func (NoneEncryptor) Setup(string) error { return nil }

func (NoneEncryptor) Encrypt(r io.Reader, w io.Writer) error {
	_, err := io.Copy(w, r)
	return err
}

func (NoneEncryptor) Unlock(string) (dareme.DecryptionContext, error) {
	return NoneEncryptor{}, nil
}

func (NoneEncryptor) IsConfigured() bool { return true }

// Decrypt copies r to w unchanged.
func (NoneEncryptor) Decrypt(r io.Reader, w io.Writer) error {
	_, err := io.Copy(w, r)
	return err
}
