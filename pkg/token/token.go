package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при неверной подписи или формате токена
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrExpiredToken возвращается, когда срок действия токена истёк
	ErrExpiredToken = errors.New("token: token expired")

	// ErrEmptySecret возвращается при попытке создать менеджер без секрета
	ErrEmptySecret = errors.New("token: empty signing secret")
)

// DefaultTTL время жизни токена администратора
const DefaultTTL = 24 * time.Hour

// Claims данные, зашитые в токен
type Claims struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет HS256 токены
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создает менеджер токенов
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue выпускает токен для администратора
func (m *Manager) Issue(adminID int64, username string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(adminID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: failed to sign: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.AdminID <= 0 {
		return nil, fmt.Errorf("%w: missing admin id", ErrInvalidToken)
	}

	return claims, nil
}
