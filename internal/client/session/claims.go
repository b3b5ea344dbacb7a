package session

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser()

// ExpiresAt decodes the token payload without verifying the signature and
// returns its exp claim. ok is false when the token carries no exp.
// The signing key lives on the server; the client only needs the expiry.
func ExpiresAt(token string) (exp time.Time, ok bool, err error) {
	if token == "" {
		return time.Time{}, false, common.ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}
