package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nutrifyhq/nutrify/internal/ctxkeys"
)

var ErrInvalidSession = errors.New("invalid session token")

// IdentityService verifies session tokens minted by the external identity
// provider. The application never issues credentials itself; it only
// checks the provider's signature and reads the asserted profile claims.
type IdentityService struct {
	secret string
}

func NewIdentityService(secret string) *IdentityService {
	return &IdentityService{secret: secret}
}

// VerifySessionToken validates the token signature and extracts the
// caller's external identifier and profile fields.
func (s *IdentityService) VerifySessionToken(tokenString string) (*ctxkeys.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	externalID, ok := claims["sub"].(string)
	if !ok || externalID == "" {
		return nil, ErrInvalidSession
	}

	identity := &ctxkeys.Identity{
		ExternalID: externalID,
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity, nil
}
