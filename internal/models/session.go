package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken — выпущенный сессионный токен.
//
// Token — подписанный JWT, кладётся в cookie;
// ID — jti, по нему сессия отзывается.
type SessionToken struct {
	Token     string
	ID        string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// SessionClaims — проверенное содержимое токена.
type SessionClaims struct {
	ID        string
	UserID    uuid.UUID
	Email     string
	Role      Role
	ExpiresAt time.Time
}
