package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignValue encodes value as "value|signature" where the signature is a
// hex-encoded HMAC-SHA-256 over the value keyed by secret.
func SignValue(secret, value string) string {
	return value + "|" + signature(secret, value)
}

// VerifyValue splits a token on the first separator, recomputes the
// signature over the extracted value and returns the value only when the
// signature matches. The comparison is constant-time.
func VerifyValue(secret, token string) (string, bool) {
	value, sig, ok := strings.Cut(token, "|")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(signature(secret, value))) {
		return "", false
	}
	return value, true
}

func signature(secret, value string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
