package token_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/utils/token"
)

func TestSignVerify(t *testing.T) {
	const secret = "bridge-secret"

	t.Run("Fresh token verifies", func(t *testing.T) {
		raw, err := token.Sign(secret, time.Now())
		gt.NoError(t, err).Required()
		gt.NoError(t, token.Verify(secret, raw))
	})

	t.Run("Wrong secret", func(t *testing.T) {
		raw, err := token.Sign(secret, time.Now())
		gt.NoError(t, err).Required()
		gt.Error(t, token.Verify("other-secret", raw))
	})

	t.Run("Expired token", func(t *testing.T) {
		raw, err := token.Sign(secret, time.Now().Add(-time.Hour))
		gt.NoError(t, err).Required()
		gt.Error(t, token.Verify(secret, raw))
	})

	t.Run("Garbage", func(t *testing.T) {
		gt.Error(t, token.Verify(secret, "not-a-jwt"))
	})
}

func TestFromHeader(t *testing.T) {
	raw, ok := token.FromHeader(token.Header("abc.def.ghi"))
	gt.True(t, ok)
	gt.Equal(t, "abc.def.ghi", raw)

	_, ok = token.FromHeader("Basic dXNlcjpwYXNz")
	gt.False(t, ok)

	_, ok = token.FromHeader("")
	gt.False(t, ok)

	_, ok = token.FromHeader("Bearer ")
	gt.False(t, ok)
}
