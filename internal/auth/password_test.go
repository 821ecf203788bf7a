package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	stored := HashPassword("wonjunee", "pw123")

	salt, digest, ok := strings.Cut(stored, ",")
	require.True(t, ok)
	assert.Len(t, salt, saltLength)
	assert.Len(t, digest, 64)
	for _, r := range salt {
		assert.Contains(t, saltLetters, string(r))
	}
}

func TestHashPassword_DeterministicWithSalt(t *testing.T) {
	a := hashPasswordWithSalt("wonjunee", "pw123", "abcde")
	b := hashPasswordWithSalt("wonjunee", "pw123", "abcde")
	assert.Equal(t, a, b)

	c := hashPasswordWithSalt("wonjunee", "pw123", "fghij")
	assert.NotEqual(t, a, c)
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	pairs := []struct{ name, password string }{
		{"wonjunee", "pw123"},
		{"some_user", "a much longer pass phrase"},
		{"a-b", "123"},
	}
	for _, p := range pairs {
		stored := HashPassword(p.name, p.password)
		assert.True(t, VerifyPassword(p.name, p.password, stored))
	}
}

func TestVerifyPassword_SingleCharMutation(t *testing.T) {
	stored := HashPassword("wonjunee", "pw123")

	for i := 0; i < len("pw123"); i++ {
		mutated := []byte("pw123")
		mutated[i] ^= 1
		assert.False(t, VerifyPassword("wonjunee", string(mutated), stored),
			"mutation at index %d must not verify", i)
	}
}

func TestVerifyPassword_WrongName(t *testing.T) {
	stored := HashPassword("wonjunee", "pw123")
	assert.False(t, VerifyPassword("otheruser", "pw123", stored))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	assert.False(t, VerifyPassword("wonjunee", "pw123", ""))
	assert.False(t, VerifyPassword("wonjunee", "pw123", "no-separator"))
	assert.False(t, VerifyPassword("wonjunee", "pw123", "salt,"))
}
