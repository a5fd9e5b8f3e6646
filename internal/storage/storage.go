// storage определяет контракты доступа к хранилищам портала.
//
// storage.go — таблицы витрины и учётные записи (PostgreSQL);
// objects.go — разрешение публичных адресов объектов (S3/MinIO).
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/foundation-portal/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (например, email пользователя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректные аргументы запроса к хранилищу.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ContentStorage — чтение таблиц витрины. Записи в эти таблицы
// портал не выполняет: контент ведётся вне сервиса.
type ContentStorage interface {
	// ListNews возвращает не более limit новостей, отсортированных по published_at DESC,
	// с адресом первого изображения из news_images (пусто, если изображений нет)
	// и количеством изображений.
	ListNews(ctx context.Context, limit int32) ([]models.NewsItem, error)
	// ListPartners возвращает партнёров по sort_order ASC.
	ListPartners(ctx context.Context) ([]models.Partner, error)
	// ListSlides возвращает слайды по sort_order ASC.
	ListSlides(ctx context.Context) ([]models.Slide, error)
	// ListSidebarItems возвращает пункты меню админ-портала по sort_order ASC.
	ListSidebarItems(ctx context.Context) ([]models.SidebarItem, error)
}

// UserStorage — учётные записи портала.
type UserStorage interface {
	// SaveUser создаёт пользователя. При занятом email — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail ищет пользователя по нормализованному email. Нет записи — ErrNotFound.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID ищет пользователя по идентификатору. Нет записи — ErrNotFound.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Storage задаёт контракт доступа к БД для портала.
type Storage interface {
	ContentStorage
	UserStorage
	Close()
}
