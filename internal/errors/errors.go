// errors стандартизирует ответы об ошибках HTTP-слоя портала.
// На вход принимает доменную ошибку (sentinel из service/storage/slider),
// на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/slider"
	"github.com/pribylovaa/foundation-portal/internal/storage"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ErrNotFound — маршрут или ресурс отсутствует на уровне транспорта.
var ErrNotFound = stderrors.New("not found")

// ErrBadRequest — тело или параметры запроса некорректны.
var ErrBadRequest = stderrors.New("bad request")

type rule struct {
	target error
	status int
	code   string
	msg    string
}

// rules проверяются по порядку: контекстные ошибки раньше доменных,
// так как недоступность источника часто оборачивает таймаут.
var rules = []rule{
	{context.Canceled, StatusClientClosedRequest, "canceled", "canceled"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},

	{service.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", "service unavailable"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated", "invalid credentials"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},
	{service.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},
	{service.ErrTokenRevoked, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},

	{service.ErrEmailTaken, http.StatusConflict, "already_exists", "already exists"},
	{storage.ErrAlreadyExists, http.StatusConflict, "already_exists", "already exists"},

	{service.ErrInvalidEmail, http.StatusBadRequest, "invalid_argument", "invalid email"},
	{service.ErrWeakPassword, http.StatusBadRequest, "invalid_argument", "password is too weak"},
	{service.ErrEmptyPassword, http.StatusBadRequest, "invalid_argument", "password is empty"},
	{service.ErrInvalidRole, http.StatusBadRequest, "invalid_argument", "invalid role"},
	{storage.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument", "invalid argument"},
	{slider.ErrOutOfRange, http.StatusBadRequest, "invalid_argument", "slide index out of range"},
	{ErrBadRequest, http.StatusBadRequest, "invalid_argument", "invalid argument"},

	{storage.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{ErrNotFound, http.StatusNotFound, "not_found", "not found"},
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и ответ для фронта.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - известная ошибка (errors.Is по таблице rules) — соответствующий статус;
//   - прочее — 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, r := range rules {
			if stderrors.Is(err, r.target) {
				return r.status, ErrorResponse{Error: APIError{Code: r.code, Message: r.msg}}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
