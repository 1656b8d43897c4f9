// Package auth выпуск и проверка JWT токенов доступа
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при некорректном или просроченном токене
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims полезная нагрузка токена доступа
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены
// Секрет и время жизни задаются через конфигурацию, а не глобальное состояние
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// CreateToken выпускает HS256 токен для пользователя
func (m *Manager) CreateToken(userID int64, isAdmin bool) (string, error) {
	claims := Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken проверяет подпись и срок действия токена
// Возвращает ID пользователя и признак администратора
func (m *Manager) ParseToken(tokenStr string) (int64, bool, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, false, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: bad subject: %v", ErrInvalidToken, err)
	}

	return userID, claims.IsAdmin, nil
}
