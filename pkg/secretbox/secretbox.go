// Package secretbox cifra credenciais de terceiros antes de gravá-las no banco.
package secretbox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyKey      = errors.New("secretbox: chave de criptografia vazia")
	ErrInvalidCipher = errors.New("secretbox: texto cifrado inválido")
)

const info = "advision api key encryption"

type Box struct {
	key []byte
}

// New deriva uma chave de 32 bytes a partir do segredo configurado
func New(secret string) (*Box, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("secretbox: erro ao derivar chave: %w", err)
	}

	return &Box{key: key}, nil
}

// Encrypt retorna nonce||ciphertext codificado em base64
func (b *Box) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *Box) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidCipher
	}

	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}

	if len(raw) < aead.NonceSize() {
		return "", ErrInvalidCipher
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCipher
	}

	return string(plaintext), nil
}

// Mask mantém apenas os quatro últimos caracteres visíveis
func Mask(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
