// service содержит бизнес-логику портала:
// чтение списков витрины (новости, партнёры, слайды, меню админ-портала)
// и учётные записи (вход, сессионные токены, создание пользователей).
//
// Основные аспекты:
//   - Service не хранит состояние запроса и безопасен для конкурентного
//     использования при потокобезопасных зависимостях;
//   - ошибки хранилища при чтении списков оборачиваются в ErrUnavailable,
//     транспорт маппит их на 503;
//   - порядок списков задаёт хранилище, сервис его не меняет.
package service

import (
	"errors"

	"github.com/pribylovaa/foundation-portal/internal/cache"
	"github.com/pribylovaa/foundation-portal/internal/config"
	"github.com/pribylovaa/foundation-portal/internal/metrics"
	"github.com/pribylovaa/foundation-portal/internal/storage"
)

var (
	// ErrUnavailable — источник данных недоступен. HTTP 503.
	ErrUnavailable = errors.New("source unavailable")

	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен повреждён, подписан чужим ключом или выдан не нами. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — сессия завершена через выход. HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrEmailTaken — e-mail уже занят. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — e-mail некорректен. HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не проходит политику сложности. HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidRole — неизвестная роль пользователя. HTTP 400.
	ErrInvalidRole = errors.New("invalid role")
)

// Service описывает бизнес-логику портала.
type Service struct {
	storage storage.Storage
	objects storage.Objects
	cfg     *config.Config
	revoked cache.RevokedStore // может быть nil: отзыв сессий отключён
	metrics *metrics.Metrics   // может быть nil
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, objects storage.Objects, cfg *config.Config) *Service {
	return &Service{
		storage: st,
		objects: objects,
		cfg:     cfg,
	}
}

// SetRevokedStore подключает список отозванных сессий (опционально).
func (s *Service) SetRevokedStore(c cache.RevokedStore) {
	s.revoked = c
}

// SetMetrics подключает метрики (опционально).
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}
