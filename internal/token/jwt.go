package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kelasbackend/forum-api/domain"
)

// Claims carried by both access and refresh tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager signs HS256 access and refresh tokens with separate secrets.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

var _ domain.TokenManager = (*JWTManager)(nil)

func NewJWTManager(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (m *JWTManager) GenerateAccessToken(u domain.User) (string, error) {
	return m.generate(u, m.accessSecret, m.accessTTL)
}

func (m *JWTManager) GenerateRefreshToken(u domain.User) (string, error) {
	return m.generate(u, m.refreshSecret, m.refreshTTL)
}

func (m *JWTManager) generate(u domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *JWTManager) VerifyRefreshToken(tokenStr string) (domain.User, error) {
	claims, err := Parse(tokenStr, m.refreshSecret)
	if err != nil {
		return domain.User{}, domain.ErrBadParamInput
	}
	return domain.User{
		ID:       claims.UserID,
		Username: claims.Username,
	}, nil
}

// Parse validates an HS256 token against the given secret and returns
// its claims.
func Parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
