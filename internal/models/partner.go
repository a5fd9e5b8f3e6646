package models

import "github.com/google/uuid"

// Partner — партнёр фонда.
//
// LogoPath — путь объекта в бакете; LogoURL заполняется сервисом
// при выдаче (разрешение публичного адреса).
type Partner struct {
	ID         uuid.UUID
	Name       string
	LogoPath   string
	LogoURL    string
	WebsiteURL *string
	SortOrder  int
}
