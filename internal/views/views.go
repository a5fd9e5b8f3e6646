// views рисует страницы портала из встроенных html/template-шаблонов.
//
// Страницы: главная (слайдер, стипендия, преимущества, новости, интервью,
// партнёры, подвал), админ- и преподавательский порталы, вход, заглушка загрузки.
// Фрагмент слайдера рисуется отдельно для SSE-патчей.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/models"
)

//go:embed templates/*.html
var files embed.FS

//go:embed static
var static embed.FS

// SliderID — id элемента слайдера; SSE-патчи заменяют его целиком.
const SliderID = "slider"

// SliderData — состояние карусели для отрисовки.
// ViewID пуст при серверной отрисовке страницы до подключения потока.
type SliderData struct {
	ViewID  string
	Slides  []models.Slide
	Current int
	Loading bool
}

// HomeData — данные главной страницы.
type HomeData struct {
	Slider      SliderData
	News        listsync.State[models.NewsItem]
	Partners    listsync.State[models.Partner]
	Scholarship Scholarship
	Benefits    []Benefit
	Interview   Interview
	Footer      []FooterLink
	Year        int
}

// NewHomeData заполняет статические блоки главной.
func NewHomeData() HomeData {
	return HomeData{
		Scholarship: defaultScholarship,
		Benefits:    defaultBenefits,
		Interview:   defaultInterview,
		Footer:      defaultFooterLinks,
		Year:        time.Now().Year(),
	}
}

// PortalData — данные админ- или преподавательского портала.
type PortalData struct {
	Title   string
	User    *models.User
	Sidebar listsync.State[models.SidebarItem]
	Active  string
}

// LoginData — данные страницы входа.
type LoginData struct {
	Email   string
	Flashes []string
}

// Renderer — набор разобранных шаблонов.
type Renderer struct {
	t *template.Template
}

// New разбирает встроенные шаблоны.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("views.New: %w", err)
	}
	return &Renderer{t: t}, nil
}

// MustNew — New с panic при ошибке.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("02.01.2006") },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"add": func(a, b int) int { return a + b },
}

// Home рисует главную страницу.
func (v *Renderer) Home(w io.Writer, d HomeData) error { return v.exec(w, "home", d) }

// Portal рисует страницу админ- или преподавательского портала.
func (v *Renderer) Portal(w io.Writer, d PortalData) error { return v.exec(w, "portal", d) }

// Login рисует форму входа с одноразовыми сообщениями.
func (v *Renderer) Login(w io.Writer, d LoginData) error { return v.exec(w, "login", d) }

// Loading рисует заглушку гейта, пока сессия не готова.
func (v *Renderer) Loading(w io.Writer) error { return v.exec(w, "loading", nil) }

// Forbidden рисует отказ по роли.
func (v *Renderer) Forbidden(w io.Writer) error { return v.exec(w, "forbidden", nil) }

// Slider рисует фрагмент слайдера.
func (v *Renderer) Slider(w io.Writer, d SliderData) error { return v.exec(w, "slider", d) }

// Partners рисует блок партнёров; пустой и загруженный список не даёт вывода.
func (v *Renderer) Partners(w io.Writer, d listsync.State[models.Partner]) error {
	return v.exec(w, "partners", d)
}

// Static раздаёт встроенные /static/ ресурсы (логотип, заглушка обложки, стили).
func Static() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// SliderHTML рисует фрагмент слайдера в строку для SSE.
func (v *Renderer) SliderHTML(d SliderData) (string, error) {
	var buf bytes.Buffer
	if err := v.Slider(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (v *Renderer) exec(w io.Writer, name string, data any) error {
	// Буфер: при ошибке шаблона клиент не получает половину страницы.
	var buf bytes.Buffer
	if err := v.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("views.%s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
