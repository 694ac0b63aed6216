package firebase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyJWTIDTokenRejectsGarbage(t *testing.T) {
	uid, ok := VerifyJWTIDToken("not-a-jwt", "evently-dev", time.Minute)

	assert.False(t, ok)
	assert.Equal(t, "", uid)
}

func TestVerifyJWTIDTokenRejectsEmptyToken(t *testing.T) {
	uid, ok := VerifyJWTIDToken("", "evently-dev", time.Minute)

	assert.False(t, ok)
	assert.Equal(t, "", uid)
}

// Structurally valid JWT with no kid header; must fail before any
// certificate fetch.
func TestVerifyJWTIDTokenRejectsMissingKid(t *testing.T) {
	token := "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJmb29iYXJiYXoifQ." +
		"c2lnbmF0dXJl"

	uid, ok := VerifyJWTIDToken(token, "evently-dev", time.Minute)

	assert.False(t, ok)
	assert.Equal(t, "", uid)
}
