// Package backup seals and opens encrypted snapshots of the record store.
// Snapshots are encrypted with a passphrase using age's scrypt recipient,
// so a backup file is useless without the passphrase that created it.
package backup

import (
	"fmt"
	"io"

	"filippo.io/age"
)

// Seal reads plaintext from r and writes passphrase-encrypted ciphertext to w.
func Seal(w io.Writer, r io.Reader, passphrase string) error {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}

	encWriter, err := age.Encrypt(w, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}

	if _, err := io.Copy(encWriter, r); err != nil {
		return fmt.Errorf("encrypting data: %w", err)
	}

	if err := encWriter.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}

	return nil
}

// Open reads passphrase-encrypted ciphertext from r and writes plaintext to w.
// A wrong passphrase surfaces as a decryption error from the underlying stream.
func Open(w io.Writer, r io.Reader, passphrase string) error {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt identity: %w", err)
	}

	decReader, err := age.Decrypt(r, identity)
	if err != nil {
		return fmt.Errorf("decrypting data: %w", err)
	}

	if _, err := io.Copy(w, decReader); err != nil {
		return fmt.Errorf("reading decrypted data: %w", err)
	}

	return nil
}
