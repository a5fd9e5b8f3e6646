// gate защищает страницы портала: пока контекст аутентификации
// не готов — заглушка, без пользователя — переход на страницу входа,
// с пользователем — исходный обработчик.
package gate

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/session"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

// State — решение гейта по запросу.
type State int

const (
	Loading State = iota
	Authorized
	Unauthorized
	Forbidden
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Observer получает каждое решение (см. metrics.Metrics).
type Observer interface {
	ObserveGate(state string)
}

// Options — параметры гейта.
type Options struct {
	// LoginPath — адрес страницы входа.
	LoginPath string
	// Roles — допустимые роли; пусто — любая.
	Roles []models.Role
	// RetryAfter — секунды для заголовка Retry-After в состоянии Loading.
	RetryAfter int
	// Placeholder рисует заглушку загрузки; nil — текстовый ответ.
	Placeholder http.Handler
	// Forbidden рисует отказ по роли; nil — текстовый ответ.
	Forbidden http.Handler
	Observer  Observer
}

// Decide вычисляет состояние гейта для запроса.
func Decide(p session.Provider, r *http.Request, roles []models.Role) (State, *models.User) {
	if p.IsResolving() {
		return Loading, nil
	}

	user, ok := p.CurrentUser(r)
	if !ok || user == nil {
		return Unauthorized, nil
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		return Forbidden, user
	}

	return Authorized, user
}

// Protect оборачивает next гейтом.
func Protect(p session.Provider, opts Options) func(http.Handler) http.Handler {
	if opts.LoginPath == "" {
		opts.LoginPath = "/login"
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = 1
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, user := Decide(p, r, opts.Roles)
			if opts.Observer != nil {
				opts.Observer.ObserveGate(state.String())
			}

			lg := log.From(r.Context())

			switch state {
			case Loading:
				w.Header().Set("Retry-After", strconv.Itoa(opts.RetryAfter))
				w.Header().Set("Cache-Control", "no-store")
				if opts.Placeholder != nil {
					opts.Placeholder.ServeHTTP(&statusOverride{ResponseWriter: w, status: http.StatusServiceUnavailable}, r)
					return
				}
				http.Error(w, "loading", http.StatusServiceUnavailable)

			case Unauthorized:
				lg.Debug("gate_redirect", slog.String("path", r.URL.Path))
				w.Header().Set("Cache-Control", "no-store")
				http.Redirect(w, r, opts.LoginPath, http.StatusSeeOther)

			case Forbidden:
				lg.Warn("gate_forbidden",
					slog.String("path", r.URL.Path),
					slog.String("user_id", user.ID.String()),
					slog.String("role", string(user.Role)),
				)
				if opts.Forbidden != nil {
					opts.Forbidden.ServeHTTP(&statusOverride{ResponseWriter: w, status: http.StatusForbidden}, r)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)

			default:
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
			}
		})
	}
}

// statusOverride заставляет обработчик заглушки ответить нужным статусом.
type statusOverride struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusOverride) WriteHeader(int) {
	if s.wroteHeader {
		return
	}
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(s.status)
}

func (s *statusOverride) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(s.status)
	}
	return s.ResponseWriter.Write(b)
}

type userKey struct{}

// WithUser кладёт пользователя в контекст.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom достаёт пользователя, пропущенного гейтом.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey{}).(*models.User)
	return u, ok && u != nil
}
