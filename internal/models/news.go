// models содержит доменные сущности портала.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsItem — новость для блока новостей главной страницы.
//
// Особенности:
//   - ImageURL — адрес первого связанного изображения (news_images)
//     либо заглушка, если изображений нет;
//   - ImageCount — число связанных изображений;
//   - PublishedAt — в UTC.
type NewsItem struct {
	ID          uuid.UUID
	Title       string
	Category    string
	Excerpt     string
	ImageURL    string
	PublishedAt time.Time
	ImageCount  int
}
