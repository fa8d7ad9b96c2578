// Package token signs and verifies the short-lived bearer tokens that guard
// the bridge HTTP API.
package token

import (
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// Issuer is the iss claim of every bridge token
	Issuer = "wcadmin"

	// Lifetime is how long a signed token stays valid
	Lifetime = time.Minute

	bearerPrefix = "Bearer "
)

// Sign issues a token valid from now for Lifetime
func Sign(secret string, now time.Time) (string, error) {
	tok, err := jwt.NewBuilder().
		Issuer(Issuer).
		IssuedAt(now).
		Expiration(now.Add(Lifetime)).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte(secret)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token")
	}
	return string(signed), nil
}

// Verify checks the signature, issuer and expiry of raw
func Verify(secret, raw string) error {
	_, err := jwt.ParseString(raw,
		jwt.WithKey(jwa.HS256, []byte(secret)),
		jwt.WithValidate(true),
		jwt.WithIssuer(Issuer),
	)
	if err != nil {
		return goerr.Wrap(err, "invalid bridge token")
	}
	return nil
}

// FromHeader extracts the token from an Authorization header value
func FromHeader(header string) (string, bool) {
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// Header formats raw as an Authorization header value
func Header(raw string) string {
	return bearerPrefix + raw
}
