// Package auth implements the credential codec, the signed-value codec used
// for session cookies, and the access allowlist predicate.
//
// The credential format is "salt,hexdigest" with the digest computed as
// SHA-256 over name+password+salt. This is deliberately weak by modern
// standards (no iteration count, no memory-hard KDF) and is kept only for
// compatibility with already-stored credentials.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	saltLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	saltLength  = 5
)

func makeSalt() string {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to read random salt: %v", err))
	}
	for i := range b {
		b[i] = saltLetters[int(b[i])%len(saltLetters)]
	}
	return string(b)
}

// HashPassword returns a "salt,digest" pair for the given name and password
// using a freshly generated salt.
func HashPassword(name, password string) string {
	return hashPasswordWithSalt(name, password, makeSalt())
}

func hashPasswordWithSalt(name, password, salt string) string {
	sum := sha256.Sum256([]byte(name + password + salt))
	return salt + "," + hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest using the salt embedded in stored and
// compares the result. It never errors; any malformed input verifies false.
func VerifyPassword(name, password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ",")
	if !ok {
		return false
	}
	return stored == hashPasswordWithSalt(name, password, salt)
}
