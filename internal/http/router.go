package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/foundation-portal/internal/gate"
	"github.com/pribylovaa/foundation-portal/internal/http/handlers"
	"github.com/pribylovaa/foundation-portal/internal/http/middleware"
	"github.com/pribylovaa/foundation-portal/internal/metrics"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/session"
	"github.com/pribylovaa/foundation-portal/internal/views"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Metrics *metrics.Metrics // может быть nil
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *handlers.Handlers, p session.Provider, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(opts.Logger), // паника -> 500 и запись с request_id
		middleware.RequestID(),          // X-Request-Id до Logging и Recover-записи
		middleware.Logging(opts.Logger), // логгер в контекст и access-строка
		middleware.Metrics(opts.Metrics),
	)

	// SSE-поток живёт, пока открыт клиент: общий дедлайн к нему не применяется.
	root.Get("/slider/stream", h.SliderStream)
	root.Handle("/static/*", views.Static())

	root.Group(func(r chi.Router) {
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
		}
		registerRoutes(r, h, p, opts)
	})

	return root
}

// registerRoutes — единая точка регистрации страниц и API.
func registerRoutes(r chi.Router, h *handlers.Handlers, p session.Provider, opts Options) {
	// site
	r.Get("/", h.Home)
	r.Get("/fragments/partners", h.PartnersFragment)
	r.Post("/slider/{view}/{action}", h.SliderNav)

	// api
	r.Get("/api/news", h.ListNews)
	r.Get("/api/partners", h.ListPartners)
	r.Get("/api/slides", h.ListSlides)

	// auth
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	// portals
	guard := func(roles ...models.Role) func(http.Handler) http.Handler {
		return gate.Protect(p, gate.Options{
			LoginPath:   h.LoginPath(),
			Roles:       roles,
			Placeholder: http.HandlerFunc(h.Loading),
			Forbidden:   http.HandlerFunc(h.Forbidden),
			Observer:    opts.Metrics,
		})
	}
	r.With(guard(models.RoleAdmin)).Get("/admin", h.AdminPortal)
	r.With(guard(models.RoleTeacher, models.RoleAdmin)).Get("/teacher", h.TeacherPortal)
}
