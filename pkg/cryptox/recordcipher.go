package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// recordSaltLength is the per-record salt used to derive the AES key.
const recordSaltLength = 16

// ErrRecordDecrypt is returned when a stored record blob cannot be opened,
// either because the password is wrong or the blob was tampered with.
var ErrRecordDecrypt = errors.New("record decryption failed")

// deriveRecordKey stretches a record password into an AES-256 key with
// Argon2id, using the same cost parameters as password storage.
func deriveRecordKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		32,
	)
}

// EncryptRecord encrypts record content under a password using AES-256-GCM
// with an Argon2id-derived key. The output format is:
// [16-byte salt][12-byte nonce][encrypted data][16-byte auth tag]
// Each call uses a fresh salt and nonce, so identical content produces
// different blobs.
func EncryptRecord(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, recordSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveRecordKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// gcm.Seal appends ciphertext and auth tag after salt and nonce
	out := make([]byte, 0, recordSaltLength+gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// DecryptRecord opens a blob produced by EncryptRecord. A wrong password or
// a modified blob both fail the GCM authentication check and return
// ErrRecordDecrypt.
func DecryptRecord(blob []byte, password string) ([]byte, error) {
	if len(blob) < recordSaltLength {
		return nil, ErrRecordDecrypt
	}
	salt, rest := blob[:recordSaltLength], blob[recordSaltLength:]

	block, err := aes.NewCipher(deriveRecordKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(rest) < gcm.NonceSize() {
		return nil, ErrRecordDecrypt
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrRecordDecrypt
	}
	return plaintext, nil
}
