package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Timeout ограничивает обработку страницы или API-вызова сроком d.
// Запросы с Accept: text/event-stream (datastar-фрагменты, поток слайдера)
// живут, пока открыт клиент, и проходят без срока. Уже выставленный
// deadline не продлевается; d<=0 отключает мидлвар.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wantsEventStream(r) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func wantsEventStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
