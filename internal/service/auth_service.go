package service

import (
	"errors"
	"time"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and
	// expired tokens alike.
	ErrInvalidToken = errors.New("Invalid token")
)

const tokenTTL = time.Hour

// AuthService issues and verifies the bearer tokens handed out at
// login. It is stateless: everything lives in the signed token.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates an auth service signing with the given secret.
// The secret is injected from configuration; there is no embedded
// default.
func NewAuthService(secret string) *AuthService {
	return &AuthService{jwtSecret: []byte(secret)}
}

// IssueToken creates a signed token carrying the user's ID, valid for
// one hour.
func (s *AuthService) IssueToken(userID string) (string, error) {
	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates signature and expiry and returns the embedded
// claims.
func (s *AuthService) VerifyToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
