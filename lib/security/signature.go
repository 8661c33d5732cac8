package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const signaturePrefix = "sha256="

var (
	ErrNoSecret           = errors.New("webhook secret is not configured")
	ErrMissingSignature   = errors.New("missing signature header")
	ErrMalformedSignature = errors.New("malformed signature header")
	ErrSignatureMismatch  = errors.New("signature verification failed")
)

// VerifySignature checks a GitHub-style HMAC-SHA256 webhook signature over the
// raw request body. The header carries the MAC as "sha256=<hex>". The body must
// be the exact bytes that arrived on the wire, never a re-serialized payload.
func VerifySignature(body []byte, signatureHeader string, secret string) error {
	if secret == "" {
		return ErrNoSecret
	}
	if signatureHeader == "" {
		return ErrMissingSignature
	}
	if !strings.HasPrefix(signatureHeader, signaturePrefix) {
		return fmt.Errorf("%w: expected %s prefix", ErrMalformedSignature, signaturePrefix)
	}

	claimed, err := hex.DecodeString(strings.TrimPrefix(signatureHeader, signaturePrefix))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	// hmac.Equal is constant time, a plain == would leak through timing
	if !hmac.Equal(claimed, expected) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign computes the signature header value for body, as the source host would.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
