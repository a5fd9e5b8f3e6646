package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/pkg/redact"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/views"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

const (
	flashInvalidCredentials = "Invalid email or password"
	flashUnavailable        = "Sign-in is temporarily unavailable, try again later"
)

// PortalPath — стартовая страница портала для роли.
func PortalPath(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/teacher"
}

// LoginForm рисует форму входа. Уже вошедший пользователь уходит в свой портал.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if user, ok := h.sessions.CurrentUser(r); ok {
		http.Redirect(w, r, PortalPath(user.Role), http.StatusSeeOther)
		return
	}

	data := views.LoginData{Flashes: h.sessions.Flashes(w, r)}
	w.Header().Set("Cache-Control", "no-store")
	render(w, r, func(out io.Writer) error { return h.views.Login(out, data) })
}

// Login проверяет учётные данные. Неудача — flash и возврат на форму.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	lg := log.From(r.Context())

	if err := r.ParseForm(); err != nil {
		h.loginFailed(w, r, flashInvalidCredentials)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.sessions.SignIn(w, r, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			lg.Info("login_rejected", slog.String("email", redact.Email(email)))
			h.loginFailed(w, r, flashInvalidCredentials)
			return
		}

		lg.Error("login_failed",
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		h.loginFailed(w, r, flashUnavailable)
		return
	}

	lg.Info("login_ok",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)
	http.Redirect(w, r, PortalPath(user.Role), http.StatusSeeOther)
}

func (h *Handlers) loginFailed(w http.ResponseWriter, r *http.Request, msg string) {
	if err := h.sessions.AddFlash(w, r, msg); err != nil {
		log.From(r.Context()).Warn("flash_save_failed", slog.String("err", err.Error()))
	}
	http.Redirect(w, r, h.site.LoginPath, http.StatusSeeOther)
}

// Logout завершает сессию и возвращает на главную.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		log.From(r.Context()).Warn("logout_failed", slog.String("err", err.Error()))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
