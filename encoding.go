package gflake

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"
)

// Bytes returns the ID as an 8-byte big-endian slice. Big-endian keeps
// byte-wise comparison consistent with integer comparison.
func (id ID) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// FromBytes creates an ID from an 8-byte big-endian slice
func FromBytes(b []byte) (ID, error) {
	if len(b) != 8 {
		return 0, ErrInvalidLength
	}
	return ID(binary.BigEndian.Uint64(b)), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) ID {
	id, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return id
}

// EncodeToHex encodes the ID to a 16-character hexadecimal string
func (id ID) EncodeToHex() string {
	return hex.EncodeToString(id.Bytes())
}

// EncodeToBase64 encodes the ID to a base64 string (URL-safe, no padding)
func (id ID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(id.Bytes())
}

// EncodeToBase64Std encodes the ID to a standard base64 string
func (id ID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(id.Bytes())
}

// DecodeFromHex decodes a 16-character hexadecimal string to an ID
func DecodeFromHex(s string) (ID, error) {
	if len(s) != 16 {
		return 0, ErrInvalidFormat
	}
	var b [8]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return 0, ErrInvalidFormat
	}
	return ID(binary.BigEndian.Uint64(b[:])), nil
}

// DecodeFromBase64 decodes a base64 string to an ID (URL-safe encoding)
func DecodeFromBase64(s string) (ID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to an ID
func DecodeFromBase64Std(s string) (ID, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return FromBytes(data)
}

// base62Alphabet orders digits before letters so that encoded IDs of equal
// length sort in the same order as their integer values.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EncodeToBase62 encodes the ID to a compact URL-safe base-62 string
func (id ID) EncodeToBase62() string {
	n := uint64(id)
	if n == 0 {
		return "0"
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}

// DecodeFromBase62 decodes a base-62 string to an ID
func DecodeFromBase62(s string) (ID, error) {
	if s == "" || len(s) > 11 {
		return 0, ErrInvalidFormat
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(base62Alphabet, s[i])
		if idx < 0 {
			return 0, ErrInvalidFormat
		}
		if n > (math.MaxUint64-uint64(idx))/62 {
			return 0, ErrInvalidFormat
		}
		n = n*62 + uint64(idx)
	}
	return ID(n), nil
}
