package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coachassess/internal/model"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService handles the email entry gate and participant tokens
type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		jwtSecret: []byte(secret),
		tokenTTL:  24 * time.Hour,
	}
}

// Enter validates the email locally and issues a participant token. The
// validation happens before anything touches the network: a malformed email
// never leaves the entry gate. The user ID is derived from the normalized
// email, so losing a token and re-entering resumes the same attempt and
// history instead of orphaning them under a fresh identity.
func (s *AuthService) Enter(email, name string) (*model.EnterResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	userID := s.userIDFor(email)

	claims := &model.ParticipantClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.EnterResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// userIDFor maps an email to its stable short ID. Keyed HMAC rather than a
// bare hash so IDs aren't computable from email addresses alone.
func (s *AuthService) userIDFor(email string) string {
	mac := hmac.New(sha256.New, s.jwtSecret)
	mac.Write([]byte(email))
	return "u_" + hex.EncodeToString(mac.Sum(nil))[:8]
}

// ValidateToken validates a participant JWT and returns its claims. Only
// HS256 is accepted; tokens signed with any other method are rejected
// outright.
func (s *AuthService) ValidateToken(tokenString string) (*model.ParticipantClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ParticipantClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ParticipantClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
