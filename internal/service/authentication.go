// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"shift-scheduler/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is how long an issued token stays valid.
const AccessTokenTTL = 8 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	ID   int        `json:"id"`
	Role model.Role `json:"role"`
	Name string     `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies access tokens with a single HMAC secret.
// It is built once at startup and shared read-only by every request.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: AccessTokenTTL, now: time.Now}, nil
}

// Issue 依據 principal 產生 JWT，回傳 token 與到期時間
func (i *TokenIssuer) Issue(p model.Principal) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := CustomClaims{
		ID:   p.ID,
		Role: p.Role,
		Name: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify 驗證並解析 JWT，回傳簽發當下的 principal
func (i *TokenIssuer) Verify(tokenString string) (*model.Principal, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID <= 0 || !claims.Role.Valid() {
		return nil, errors.New("invalid token claims")
	}
	return &model.Principal{ID: claims.ID, Role: claims.Role, Name: claims.Name}, nil
}
