package models

import "github.com/google/uuid"

// SidebarItem — пункт навигации админ-портала.
// IconName хранится строкой как в таблице; Icon — разрешённый символ
// (заполняет сервис, незнакомое имя даёт символ по умолчанию).
type SidebarItem struct {
	ID        uuid.UUID
	Label     string
	Href      string
	IconName  string
	Icon      string
	SortOrder int
}
