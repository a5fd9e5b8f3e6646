package models

import "github.com/google/uuid"

// Slide — изображение слайдера главной страницы.
type Slide struct {
	ID        uuid.UUID
	ImageURL  string
	Title     string
	Subtitle  string
	SortOrder int
}
