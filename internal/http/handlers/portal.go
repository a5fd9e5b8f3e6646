package handlers

import (
	"io"
	"net/http"

	"github.com/pribylovaa/foundation-portal/internal/gate"
	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/views"
)

// AdminPortal — стартовая страница админ-портала.
func (h *Handlers) AdminPortal(w http.ResponseWriter, r *http.Request) {
	h.portal(w, r, "Admin portal")
}

// TeacherPortal — стартовая страница преподавательского портала.
func (h *Handlers) TeacherPortal(w http.ResponseWriter, r *http.Request) {
	h.portal(w, r, "Teacher portal")
}

// portal рисует страницу портала с меню из admin_sidebar_items.
// Вызывается только за гейтом: пользователь уже в контексте.
func (h *Handlers) portal(w http.ResponseWriter, r *http.Request, title string) {
	user, _ := gate.UserFrom(r.Context())

	sidebar := listsync.New(service.SidebarQuery, h.catalog.ListSidebarItems,
		listsync.WithObserver(h.metrics),
	)
	defer sidebar.Dispose()

	_ = sidebar.Load(r.Context())

	data := views.PortalData{
		Title:   title,
		User:    user,
		Sidebar: sidebar.State(),
		Active:  r.URL.Path,
	}

	w.Header().Set("Cache-Control", "no-store")
	render(w, r, func(out io.Writer) error { return h.views.Portal(out, data) })
}

// Loading — заглушка гейта, пока контекст сессии не готов.
func (h *Handlers) Loading(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.Loading)
}

// Forbidden — отказ по роли.
func (h *Handlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.Forbidden)
}
