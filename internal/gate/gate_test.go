package gate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	resolving bool
	user      *models.User
}

func (s *stubProvider) CurrentUser(*http.Request) (*models.User, bool) { return s.user, s.user != nil }
func (s *stubProvider) IsResolving() bool                              { return s.resolving }
func (s *stubProvider) Init(context.Context) error                     { s.resolving = false; return nil }
func (s *stubProvider) Subscribe(fn func()) func()                     { return func() {} }
func (s *stubProvider) Dispose()                                       {}

type recObserver struct{ states []string }

func (r *recObserver) ObserveGate(s string) { r.states = append(r.states, s) }

func childHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		u, ok := UserFrom(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte("hello " + u.Email))
	})
}

func TestProtect_Loading_PlaceholderNoRedirect(t *testing.T) {
	t.Parallel()

	var called bool
	obs := &recObserver{}
	p := &stubProvider{resolving: true, user: &models.User{ID: uuid.New()}}

	placeholder := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("loading..."))
	})
	h := Protect(p, Options{Placeholder: placeholder, Observer: obs, RetryAfter: 2})(childHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.False(t, called)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Empty(t, rec.Header().Get("Location"))
	require.Equal(t, "2", rec.Header().Get("Retry-After"))
	require.Equal(t, "loading...", rec.Body.String())
	require.Equal(t, []string{"loading"}, obs.states)
}

func TestProtect_Unauthorized_RedirectsToLogin(t *testing.T) {
	t.Parallel()

	var called bool
	p := &stubProvider{}
	h := Protect(p, Options{LoginPath: "/login"})(childHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin?tab=news", nil))

	require.False(t, called)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"), "guarded URL is not kept")
}

func TestProtect_Authorized_RendersChild(t *testing.T) {
	t.Parallel()

	var called bool
	p := &stubProvider{user: &models.User{ID: uuid.New(), Email: "a@fund.org", Role: models.RoleAdmin}}
	h := Protect(p, Options{})(childHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hello a@fund.org", rec.Body.String())
}

func TestProtect_WrongRole_Forbidden(t *testing.T) {
	t.Parallel()

	var called bool
	p := &stubProvider{user: &models.User{ID: uuid.New(), Role: models.RoleTeacher}}
	h := Protect(p, Options{Roles: []models.Role{models.RoleAdmin}})(childHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProtect_LeavesLoadingAfterInit(t *testing.T) {
	t.Parallel()

	var called bool
	p := &stubProvider{resolving: true}
	h := Protect(p, Options{})(childHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teacher", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, p.Init(context.Background()))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teacher", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestDecide(t *testing.T) {
	t.Parallel()

	u := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	st, _ := Decide(&stubProvider{resolving: true, user: u}, req, nil)
	require.Equal(t, Loading, st)

	st, _ = Decide(&stubProvider{}, req, nil)
	require.Equal(t, Unauthorized, st)

	st, got := Decide(&stubProvider{user: u}, req, []models.Role{models.RoleAdmin, models.RoleTeacher})
	require.Equal(t, Authorized, st)
	require.Same(t, u, got)
}

func TestUserFrom_Empty(t *testing.T) {
	t.Parallel()

	_, ok := UserFrom(context.Background())
	require.False(t, ok)
}
