package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrMissingSecret = errors.New("jwt secret not configured")

// Claims are the custom JWT claims issued at login. Subject holds the
// student id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// StudentID parses the subject back into an id.
func (c *Claims) StudentID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenIssuer signs and parses HS256 tokens. An empty secret never signs.
type TokenIssuer struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{Secret: secret, TTL: ttl, Now: time.Now}
}

func (t *TokenIssuer) Configured() bool { return t != nil && t.Secret != "" }

// GenerateToken builds a JWT bound to the student's id and email.
func (t *TokenIssuer) GenerateToken(student *entity.Student) (string, error) {
	if !t.Configured() {
		return "", ErrMissingSecret
	}
	now := t.Now()
	claims := &Claims{
		Email: student.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(student.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.Secret))
}

// ParseToken validates signature, algorithm and expiry.
func (t *TokenIssuer) ParseToken(tokenStr string) (*Claims, error) {
	if !t.Configured() {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return []byte(t.Secret), nil
	}, jwt.WithTimeFunc(t.Now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
