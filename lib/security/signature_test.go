package security

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "it's a secret to everybody"

func TestVerifyRoundTrip(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main","after":"abc123"}`)

	err := VerifySignature(body, Sign(body, testSecret), testSecret)
	assert.NoError(t, err)
}

func TestVerifyRejectsMutatedBody(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main","after":"abc123"}`)
	header := Sign(body, testSecret)

	for i := range body {
		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[i] ^= 0x01

		err := VerifySignature(mutated, header, testSecret)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	}
}

func TestVerifyRejectsMutatedMAC(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)
	header := Sign(body, testSecret)

	raw, err := hex.DecodeString(strings.TrimPrefix(header, "sha256="))
	assert.NoError(t, err)
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01

		err := VerifySignature(body, "sha256="+hex.EncodeToString(mutated), testSecret)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	body := []byte(`{}`)

	err := VerifySignature(body, Sign(body, testSecret), "some other secret")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifyMissingHeader(t *testing.T) {
	err := VerifySignature([]byte(`{}`), "", testSecret)
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestVerifyMalformedHeader(t *testing.T) {
	body := []byte(`{}`)

	err := VerifySignature(body, "sha1=deadbeef", testSecret)
	assert.ErrorIs(t, err, ErrMalformedSignature)

	err = VerifySignature(body, "sha256=not-hex-at-all", testSecret)
	assert.ErrorIs(t, err, ErrMalformedSignature)
}

func TestVerifyEmptySecret(t *testing.T) {
	body := []byte(`{}`)

	err := VerifySignature(body, Sign(body, testSecret), "")
	assert.ErrorIs(t, err, ErrNoSecret)
}
