// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto derives a storage key from a user secret and seals
// credential values with it before they are written to disk.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// saltDomain separates the derived salt from any other use of the namespace.
const saltDomain = "go-quick-post/credential-store/v1:"

// ErrEmptySecret is returned by NewSealer when no secret is configured.
var ErrEmptySecret = errors.New("empty sealer secret")

// KDFParams are the Argon2id tuning parameters.
type KDFParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKDFParams are the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKDFParams = KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4}

const keyLen = 32 // 256 bits

// aesGCMSealer is the private implementation of [Sealer].
type aesGCMSealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from secret with Argon2id and returns an
// AES-256-GCM [Sealer]. The salt is derived from namespace, so the same
// secret yields different keys for different credential namespaces.
func NewSealer(secret, namespace string, params KDFParams) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := DeriveKey(secret, namespaceSalt(namespace), params)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMSealer{aead: gcm}, nil
}

// DeriveKey derives a 256-bit key from secret and salt using Argon2id.
func DeriveKey(secret string, salt []byte, params KDFParams) []byte {
	return argon2.IDKey([]byte(secret), salt, params.Time, params.Memory, params.Threads, keyLen)
}

func namespaceSalt(namespace string) []byte {
	sum := sha256.Sum256([]byte(saltDomain + namespace))
	return sum[:16]
}

// Seal implements [Sealer].
func (s *aesGCMSealer) Seal(plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := s.aead.Seal(nil, nonce, plaintext, aad)
	return append(nonce, ciphertext...), nil
}

// Open implements [Sealer].
func (s *aesGCMSealer) Open(blob, aad []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
