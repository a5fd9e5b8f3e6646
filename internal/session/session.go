// session — контекст аутентификации портала.
//
// Provider отвечает на два вопроса гейта: завершилась ли инициализация
// (IsResolving) и есть ли у запроса пользователь (CurrentUser).
// CookieProvider хранит подписанный сессионный токен в cookie gorilla/sessions;
// проверка токена и отзыв делегируются Authenticator (service.Service).
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/sessions"
	"github.com/pribylovaa/foundation-portal/internal/config"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

const tokenKey = "token"

// ErrDisposed — провайдер уже закрыт.
var ErrDisposed = errors.New("session provider disposed")

// Provider — то, что гейт знает о контексте аутентификации.
type Provider interface {
	// CurrentUser возвращает пользователя запроса, если он есть.
	CurrentUser(r *http.Request) (*models.User, bool)
	// IsResolving истинно, пока провайдер не готов отвечать.
	IsResolving() bool
	// Init выполняет начальную загрузку; переход в «готов» происходит один раз.
	Init(ctx context.Context) error
	// Subscribe регистрирует fn на событие готовности; возвращает отписку.
	Subscribe(fn func()) (cancel func())
	// Dispose снимает подписки.
	Dispose()
}

// Authenticator — операции с учётными записями и сессионными токенами.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.SessionToken, *models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// Check — проверка зависимости при Init (ping БД, Redis).
type Check func(ctx context.Context) error

// CookieProvider — Provider поверх cookie-сессии.
type CookieProvider struct {
	auth   Authenticator
	store  *sessions.CookieStore
	name   string
	checks []Check

	ready    atomic.Bool
	disposed atomic.Bool
	once     sync.Once

	mu   sync.Mutex
	subs map[uint64]func()
	next uint64
}

// NewCookieProvider собирает провайдер. Ключ cookie — cfg.Secret, срок — ttl.
func NewCookieProvider(auth Authenticator, cfg config.SessionConfig, ttl time.Duration, checks ...Check) *CookieProvider {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieProvider{
		auth:   auth,
		store:  store,
		name:   cfg.CookieName,
		checks: checks,
		subs:   make(map[uint64]func()),
	}
}

// Init прогоняет проверки зависимостей и переводит провайдер в «готов».
// При ошибке провайдер остаётся в состоянии загрузки; Init можно повторить.
func (p *CookieProvider) Init(ctx context.Context) error {
	const op = "session.Init"

	if p.disposed.Load() {
		return fmt.Errorf("%s: %w", op, ErrDisposed)
	}

	for _, check := range p.checks {
		if err := check(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	p.once.Do(func() {
		p.ready.Store(true)

		p.mu.Lock()
		subs := make([]func(), 0, len(p.subs))
		for _, fn := range p.subs {
			subs = append(subs, fn)
		}
		p.mu.Unlock()

		for _, fn := range subs {
			fn()
		}

		log.From(ctx).Info("session_provider_ready")
	})

	return nil
}

// IsResolving — провайдер ещё не готов.
func (p *CookieProvider) IsResolving() bool { return !p.ready.Load() }

// Subscribe вызывает fn при переходе в «готов». Если провайдер уже готов,
// fn вызывается сразу.
func (p *CookieProvider) Subscribe(fn func()) (cancel func()) {
	p.mu.Lock()
	if p.ready.Load() {
		p.mu.Unlock()
		fn()
		return func() {}
	}

	id := p.next
	p.next++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Dispose снимает все подписки.
func (p *CookieProvider) Dispose() {
	p.disposed.Store(true)

	p.mu.Lock()
	p.subs = make(map[uint64]func())
	p.mu.Unlock()
}

// CurrentUser читает токен из cookie и проверяет его.
func (p *CookieProvider) CurrentUser(r *http.Request) (*models.User, bool) {
	token := p.token(r)
	if token == "" {
		return nil, false
	}

	user, err := p.auth.Authenticate(r.Context(), token)
	if err != nil {
		log.From(r.Context()).Debug("session_rejected",
			slog.String("err", err.Error()),
		)
		return nil, false
	}

	return user, true
}

// SignIn проверяет учётные данные и записывает сессию в cookie.
func (p *CookieProvider) SignIn(w http.ResponseWriter, r *http.Request, email, password string) (*models.User, error) {
	const op = "session.SignIn"

	tok, user, err := p.auth.Login(r.Context(), email, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess := p.session(r)
	sess.Values[tokenKey] = tok.Token
	if err := sess.Save(r, w); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// SignOut отзывает сессию и удаляет cookie. Ошибка отзыва логируется,
// cookie удаляется в любом случае.
func (p *CookieProvider) SignOut(w http.ResponseWriter, r *http.Request) error {
	const op = "session.SignOut"

	sess := p.session(r)
	if token, _ := sess.Values[tokenKey].(string); token != "" {
		if err := p.auth.Logout(r.Context(), token); err != nil {
			log.From(r.Context()).Warn("session_revoke_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddFlash кладёт одноразовое сообщение для следующей страницы.
func (p *CookieProvider) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess := p.session(r)
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes забирает одноразовые сообщения.
func (p *CookieProvider) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess := p.session(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	_ = sess.Save(r, w)

	return out
}

// session возвращает сессию запроса; повреждённая cookie даёт новую пустую сессию.
func (p *CookieProvider) session(r *http.Request) *sessions.Session {
	sess, err := p.store.Get(r, p.name)
	if err != nil {
		sess = sessions.NewSession(p.store, p.name)
		opts := *p.store.Options
		sess.Options = &opts
		sess.IsNew = true
	}
	return sess
}

func (p *CookieProvider) token(r *http.Request) string {
	sess, err := p.store.Get(r, p.name)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

var _ Provider = (*CookieProvider)(nil)
