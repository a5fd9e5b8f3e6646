package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/foundation-portal/internal/errors"
)

// Recover ловит panic обработчика страницы, API или SSE-потока и отвечает 500/internal.
// Стоит снаружи Logging, поэтому request-scoped логгера в контексте ещё нет:
// request_id читается из заголовка, который выставил RequestID.
// http.ErrAbortHandler пробрасывается дальше: им net/http обрывает соединение.
func Recover(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				l.LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("request_id", r.Header.Get("X-Request-Id")),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)
				apierrors.WriteError(w, r, fmt.Errorf("internal"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
