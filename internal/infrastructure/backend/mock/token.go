package mock

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// issueToken signs an HS256 bearer token for the user, shaped like the real
// backend's access tokens.
func (b *Backend) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"role":      user.Role,
		"clinic_id": user.ClinicID,
		"exp":       b.now().Add(b.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(b.secret)
}

// verifyToken validates the signature and expiry and returns the subject.
func (b *Backend) verifyToken(token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return b.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
