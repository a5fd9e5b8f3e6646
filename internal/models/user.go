package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя портала.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

// Valid сообщает, известна ли роль.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// User — учётная запись администратора или преподавателя.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
