package cryptox

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)
	require.NotContains(t, tok, "=")

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, tok, other)

	_, err = GenerateToken(0)
	require.Error(t, err)
}

func TestRandomString(t *testing.T) {
	s, err := RandomString("AB", 64)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[AB]{64}$`), s)

	_, err = RandomString("", 4)
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestGeneratePassword(t *testing.T) {
	pw, err := GeneratePassword()
	require.NoError(t, err)
	require.Len(t, pw, TemporaryPasswordLength)
	for _, r := range pw {
		require.True(t, strings.ContainsRune(PasswordAlphabet, r))
	}
}

func TestHMAC(t *testing.T) {
	body := []byte(`{"event":"invitee.created"}`)
	sig := SignHMAC("s3cret", body)

	require.True(t, VerifyHMAC("s3cret", body, sig))
	require.False(t, VerifyHMAC("other", body, sig))
	require.False(t, VerifyHMAC("s3cret", append(body, ' '), sig))
	require.False(t, VerifyHMAC("s3cret", body, "zz"))
}

func TestEqualTokens(t *testing.T) {
	require.True(t, EqualTokens("a", "a"))
	require.False(t, EqualTokens("a", "b"))
	require.False(t, EqualTokens("a", ""))
}
