package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := issueToken("topsecret", "mon@mothma.example", time.Hour)
	require.NoError(t, err)

	email, err := parseToken("topsecret", token)
	require.NoError(t, err)
	assert.Equal(t, "mon@mothma.example", email)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := issueToken("topsecret", "a@b.com", time.Hour)
	require.NoError(t, err)

	_, err = parseToken("othersecret", token)
	require.ErrorIs(t, err, errInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := issueToken("topsecret", "a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken("topsecret", token)
	require.ErrorIs(t, err, errInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := parseToken("topsecret", "not.a.token")
	require.ErrorIs(t, err, errInvalidToken)
}
