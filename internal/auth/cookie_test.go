package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignValue_RoundTrip(t *testing.T) {
	for _, v := range []string{"1", "42", "deadbeef", ""} {
		token := SignValue("secret", v)

		got, ok := VerifyValue("secret", token)
		require.True(t, ok, "token for %q must verify", v)
		assert.Equal(t, v, got)
	}
}

func TestVerifyValue_TamperedSuffix(t *testing.T) {
	token := SignValue("secret", "42")

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'f' {
		tampered[last] = '0'
	} else {
		tampered[last] = 'f'
	}

	_, ok := VerifyValue("secret", string(tampered))
	assert.False(t, ok)
}

func TestVerifyValue_TamperedValue(t *testing.T) {
	token := SignValue("secret", "42")
	_, sig, _ := strings.Cut(token, "|")

	_, ok := VerifyValue("secret", "43|"+sig)
	assert.False(t, ok)
}

func TestVerifyValue_WrongSecret(t *testing.T) {
	token := SignValue("secret", "42")

	_, ok := VerifyValue("othersecret", token)
	assert.False(t, ok)
}

func TestVerifyValue_NoSeparator(t *testing.T) {
	_, ok := VerifyValue("secret", "justavalue")
	assert.False(t, ok)
}

func TestOwnerAllowlist(t *testing.T) {
	al := NewOwnerAllowlist("wonjunee")

	assert.True(t, al.IsSiteOwner("wonjunee"))
	assert.False(t, al.IsSiteOwner("otheruser"))
	assert.False(t, al.IsSiteOwner(""))

	empty := NewOwnerAllowlist("")
	assert.False(t, empty.IsSiteOwner(""))
}
