package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/pkg/redact"
	"github.com/pribylovaa/foundation-portal/internal/storage"
	"github.com/pribylovaa/foundation-portal/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser заводит учётную запись администратора или преподавателя.
func (s *Service) CreateUser(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	const op = "service.auth.CreateUser"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        normEmail,
		PasswordHash: hashed,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", redact.Email(user.Email)),
		slog.String("role", string(role)),
	)

	return user, nil
}

// Login проверяет email+пароль и выпускает сессионный токен.
func (s *Service) Login(ctx context.Context, email, password string) (*models.SessionToken, *models.User, error) {
	const op = "service.auth.Login"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	tok, err := s.issueSession(ctx, user, time.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return tok, user, nil
}

// Authenticate проверяет токен, список отозванных сессий и наличие пользователя.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "service.auth.Authenticate"

	claims, err := s.parseSession(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, unavailable(op, err)
		}
		if revoked {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}
	}

	user, err := s.storage.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, unavailable(op, err)
	}

	return user, nil
}

// Logout отзывает сессию до истечения её токена.
// Истёкший токен отзывать не нужно; повреждённый — ErrInvalidToken.
func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "service.auth.Logout"

	claims, err := s.parseSession(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.revoked == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return unavailable(op, err)
	}

	log.From(ctx).Info("session_revoked",
		slog.String("user_id", claims.UserID.String()),
	)

	return nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и приводит его к нижнему регистру.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword: длина >= 8, строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
