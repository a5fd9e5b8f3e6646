// handlers содержит HTTP-обработчики портала: страницы витрины и порталов,
// JSON-API списков, вход/выход и SSE-поток слайдера.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/foundation-portal/internal/config"
	apierrors "github.com/pribylovaa/foundation-portal/internal/errors"
	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/metrics"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/slider"
	"github.com/pribylovaa/foundation-portal/internal/views"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

// Catalog — чтение списков витрины (service.Service).
type Catalog interface {
	ListNews(ctx context.Context) ([]models.NewsItem, error)
	ListPartners(ctx context.Context) ([]models.Partner, error)
	ListSlides(ctx context.Context) ([]models.Slide, error)
	ListSidebarItems(ctx context.Context) ([]models.SidebarItem, error)
	NewsQuery() listsync.Query
}

// Sessions — cookie-сессия (session.CookieProvider).
type Sessions interface {
	CurrentUser(r *http.Request) (*models.User, bool)
	SignIn(w http.ResponseWriter, r *http.Request, email, password string) (*models.User, error)
	SignOut(w http.ResponseWriter, r *http.Request) error
	AddFlash(w http.ResponseWriter, r *http.Request, msg string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	catalog  Catalog
	sessions Sessions
	views    *views.Renderer
	hub      *slider.Hub
	metrics  *metrics.Metrics // может быть nil
	site     config.SiteConfig
}

// New собирает обработчики. m может быть nil.
func New(c Catalog, s Sessions, v *views.Renderer, hub *slider.Hub, m *metrics.Metrics, site config.SiteConfig) *Handlers {
	if site.LoginPath == "" {
		site.LoginPath = "/login"
	}
	return &Handlers{
		catalog:  c,
		sessions: s,
		views:    v,
		hub:      hub,
		metrics:  m,
		site:     site,
	}
}

// LoginPath — адрес страницы входа.
func (h *Handlers) LoginPath() string { return h.site.LoginPath }

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// render пишет HTML-страницу. Шаблоны буферизуются, поэтому при ошибке
// клиенту ещё ничего не отправлено и можно ответить 500.
func render(w http.ResponseWriter, r *http.Request, fn func(io.Writer) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fn(w); err != nil {
		log.From(r.Context()).Error("render_failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		apierrors.WriteError(w, r, err)
	}
}
