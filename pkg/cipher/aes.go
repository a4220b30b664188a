// Package cipher implements the reversible transform used for private diary
// content. Encryption must be deterministic: the same plaintext under the same
// key always produces the same ciphertext, so a decrypted entry re-encrypts to
// the stored bytes. AES-CBC with a key-derived IV and PKCS#7 padding, base64
// encoded.
package cipher

import (
	"bytes"
	"crypto/aes"
	stdcipher "crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	ErrKeySize    = errors.New("cipher: key must be 16, 24 or 32 bytes")
	ErrCiphertext = errors.New("cipher: malformed ciphertext")
)

// AES is a process-lifetime content cipher keyed by a single configured
// secret. 전역 키를 쓰지 않고 생성 시점에 주입받는다.
type AES struct {
	key []byte
	iv  []byte
}

// New creates a content cipher. The secret must be a valid AES key length;
// the IV is derived from its first block so the transform stays deterministic.
func New(secret string) (*AES, error) {
	key := []byte(secret)
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrKeySize
	}
	return &AES{key: key, iv: key[:aes.BlockSize]}, nil
}

// Encrypt encrypts plaintext and returns standard base64.
func (a *AES) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(a.key)
	if err != nil {
		return "", err
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	stdcipher.NewCBCEncrypter(block, a.iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Malformed or non-matching input fails with
// ErrCiphertext.
func (a *AES) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrCiphertext
	}

	block, err := aes.NewCipher(a.key)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(raw))
	stdcipher.NewCBCDecrypter(block, a.iv).CryptBlocks(out, raw)

	plain, err := unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// pad applies PKCS#7 padding.
func pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips and validates PKCS#7 padding.
func unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrCiphertext
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrCiphertext
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrCiphertext
		}
	}
	return b[:len(b)-n], nil
}
