// Package credvault шифрует учётные данные провайдеров (пароли SMTP) для хранения в БД.
//
// Формат шифротекста: hex(iv) + ":" + hex(ciphertext), AES-256-CBC с PKCS#7.
package credvault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultSecret используется, если не задан ни ключ, ни JWT секрет
const DefaultSecret = "default-key-please-change-in-production"

const (
	keyHexLength = 64 // 32 байта
	separator    = ":"
)

var (
	// ErrInvalidKey возвращается, если ключевой материал не является hex строкой
	ErrInvalidKey = errors.New("credvault: invalid key material")

	// ErrEncrypt возвращается при сбое шифрования (нет энтропии)
	ErrEncrypt = errors.New("credvault: encryption failed")
)

// Vault симметричный шифратор с ключом, вычисленным один раз при старте
type Vault struct {
	block cipher.Block
	rand  io.Reader
}

// DeriveKey вычисляет 32-байтный ключ
//
// Если keyMaterial задан, он трактуется как hex, дополняется нулями или обрезается до 64 символов.
// Иначе ключ равен sha256(fallbackSecret), а при пустом fallbackSecret sha256(DefaultSecret).
func DeriveKey(keyMaterial, fallbackSecret string) ([]byte, error) {
	if keyMaterial == "" {
		secret := fallbackSecret
		if secret == "" {
			secret = DefaultSecret
		}
		sum := sha256.Sum256([]byte(secret))
		return sum[:], nil
	}

	hexKey := keyMaterial
	if len(hexKey) < keyHexLength {
		hexKey += strings.Repeat("0", keyHexLength-len(hexKey))
	}
	hexKey = hexKey[:keyHexLength]

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// New создаёт Vault из ключевого материала и запасного секрета (см. DeriveKey)
func New(keyMaterial, fallbackSecret string) (*Vault, error) {
	key, err := DeriveKey(keyMaterial, fallbackSecret)
	if err != nil {
		return nil, err
	}
	return NewWithKey(key)
}

// NewWithKey создаёт Vault из готового 32-байтного ключа
func NewWithKey(key []byte) (*Vault, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: key must be 32 bytes, got %d", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &Vault{block: block, rand: rand.Reader}, nil
}

// Encrypt шифрует строку со свежим IV
// Пустая строка не шифруется: возвращается "" без ошибки
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(v.rand, iv); err != nil {
		return "", fmt.Errorf("%w: read iv: %v", ErrEncrypt, err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(v.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + separator + hex.EncodeToString(ciphertext), nil
}

// Decrypt расшифровывает строку формата Encrypt
// Любая ошибка (формат, hex, длина, паддинг, чужой ключ) даёт ok=false
func (v *Vault) Decrypt(ciphertext string) (string, bool) {
	if ciphertext == "" {
		return "", false
	}

	parts := strings.Split(ciphertext, separator)
	if len(parts) != 2 {
		return "", false
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != aes.BlockSize {
		return "", false
	}

	data, err := hex.DecodeString(parts[1])
	if err != nil || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", false
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(v.block, iv).CryptBlocks(plain, data)

	plain, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return "", false
	}

	return string(plain), true
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
