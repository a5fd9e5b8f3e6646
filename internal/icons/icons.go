// icons сопоставляет имена иконок из таблицы admin_sidebar_items
// закрытому перечислению символов Lucide.
//
// Parse никогда не возвращает ошибку: незнакомое имя даёт Unknown,
// а Symbol(Unknown) — символ по умолчанию.
package icons

import "strings"

// Kind — известная иконка.
type Kind int

const (
	Unknown Kind = iota
	LayoutDashboard
	Home
	Newspaper
	Users
	GraduationCap
	BookOpen
	Calendar
	Settings
	FileText
	Image
	Handshake
	BarChart
	Mail
	Bell
	LogOut
)

// Fallback — символ для Unknown.
const Fallback = "layout-dashboard"

var symbols = map[Kind]string{
	LayoutDashboard: "layout-dashboard",
	Home:            "home",
	Newspaper:       "newspaper",
	Users:           "users",
	GraduationCap:   "graduation-cap",
	BookOpen:        "book-open",
	Calendar:        "calendar",
	Settings:        "settings",
	FileText:        "file-text",
	Image:           "image",
	Handshake:       "handshake",
	BarChart:        "bar-chart",
	Mail:            "mail",
	Bell:            "bell",
	LogOut:          "log-out",
}

// byKey индексирует символы по нормализованному ключу:
// "LayoutDashboard", "layout-dashboard" и "layout_dashboard" совпадают.
var byKey = func() map[string]Kind {
	m := make(map[string]Kind, len(symbols))
	for k, s := range symbols {
		m[normalize(s)] = k
	}
	return m
}()

func normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '-', '_', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Parse разбирает имя иконки. Незнакомое или пустое имя — Unknown.
func Parse(name string) Kind {
	if k, ok := byKey[normalize(name)]; ok {
		return k
	}
	return Unknown
}

// Symbol возвращает имя символа Lucide; для Unknown — Fallback.
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	return Fallback
}

func (k Kind) String() string {
	if k == Unknown {
		return "unknown"
	}
	return k.Symbol()
}

// Resolve — Parse + Symbol.
func Resolve(name string) string { return Parse(name).Symbol() }
