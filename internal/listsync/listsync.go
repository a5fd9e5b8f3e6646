// listsync держит удалённые списки одного представления (рендер страницы
// или SSE-соединение): одно чтение на представление, флаг загрузки,
// политика реакции на ошибку и отмена чтения при закрытии представления.
//
// Основные аспекты:
//   - Load выполняет чтение не более одного раза; повторные вызовы — no-op;
//   - Loading истинно до завершения чтения и сбрасывается при успехе и при ошибке;
//   - после Dispose состояние списка больше не меняется;
//   - порядок элементов — ровно тот, что вернул источник.
package listsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pribylovaa/foundation-portal/pkg/log"
)

// ErrDisposed — чтение завершилось после закрытия представления.
var ErrDisposed = errors.New("list disposed")

// Policy — реакция на ошибку чтения.
type Policy int

const (
	// PolicySilent — пустой список, запись только на уровне debug.
	PolicySilent Policy = iota
	// PolicyLog — пустой список и предупреждение в лог.
	PolicyLog
)

// Query описывает чтение для логов и метрик.
type Query struct {
	Table     string
	Join      string
	OrderBy   string
	Ascending bool
	Limit     int
}

func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.Table)
	if q.Join != "" {
		b.WriteString("+" + q.Join)
	}
	if q.OrderBy != "" {
		dir := "desc"
		if q.Ascending {
			dir = "asc"
		}
		fmt.Fprintf(&b, " order=%s %s", q.OrderBy, dir)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " limit=%d", q.Limit)
	}
	return b.String()
}

// FetchFunc читает список из источника.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Observer получает исход каждого чтения (см. metrics.Metrics).
type Observer interface {
	ObserveFetch(table, outcome string, d time.Duration)
}

// Исходы, которые получает Observer.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeCanceled = "canceled"
)

// State — снимок состояния списка.
type State[T any] struct {
	Items   []T
	Loading bool
	Err     error
}

// Option настраивает List.
type Option func(*options)

type options struct {
	policy   Policy
	observer Observer
}

// WithPolicy задаёт политику ошибок (по умолчанию PolicySilent).
func WithPolicy(p Policy) Option { return func(o *options) { o.policy = p } }

// WithObserver подключает наблюдателя чтений.
func WithObserver(obs Observer) Option { return func(o *options) { o.observer = obs } }

// List — список одного представления.
type List[T any] struct {
	query Query
	fetch FetchFunc[T]
	opts  options

	mu       sync.Mutex
	items    []T
	loading  bool
	err      error
	started  bool
	disposed bool
	cancel   context.CancelFunc
}

// New создаёт список в состоянии загрузки.
func New[T any](q Query, fetch FetchFunc[T], opts ...Option) *List[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{
		query:   q,
		fetch:   fetch,
		opts:    o,
		items:   []T{},
		loading: true,
	}
}

// Query возвращает описание чтения.
func (l *List[T]) Query() Query { return l.query }

// Load выполняет единственное чтение под контекстом, производным от ctx.
// Блокирует до завершения чтения; повторный вызов сразу возвращает nil.
// Возвращает ошибку чтения независимо от политики: политика управляет
// только логированием.
func (l *List[T]) Load(ctx context.Context) error {
	const op = "listsync.Load"

	l.mu.Lock()
	if l.started || l.disposed {
		l.mu.Unlock()
		return nil
	}
	l.started = true
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()
	defer cancel()

	start := time.Now()
	items, err := l.fetch(ctx)
	elapsed := time.Since(start)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		l.observe(outcomeCanceled, elapsed)
		return fmt.Errorf("%s: %s: %w", op, l.query.Table, ErrDisposed)
	}

	l.loading = false
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, context.Canceled) {
			outcome = outcomeCanceled
		}
		l.observe(outcome, elapsed)
		l.err = err
		l.report(ctx, err)
		return fmt.Errorf("%s: %s: %w", op, l.query.Table, err)
	}

	if items != nil {
		l.items = items
	}
	l.observe(outcomeOK, elapsed)

	log.From(ctx).Debug("list_load_ok",
		slog.String("query", l.query.String()),
		slog.Int("count", len(l.items)),
		slog.Duration("took", elapsed),
	)

	return nil
}

func (l *List[T]) observe(outcome string, d time.Duration) {
	if l.opts.observer != nil {
		l.opts.observer.ObserveFetch(l.query.Table, outcome, d)
	}
}

func (l *List[T]) report(ctx context.Context, err error) {
	lg := log.From(ctx)
	attrs := []any{
		slog.String("query", l.query.String()),
		slog.String("err", err.Error()),
	}

	if l.opts.policy == PolicyLog {
		lg.Warn("list_load_failed", attrs...)
		return
	}
	lg.Debug("list_load_failed", attrs...)
}

// State возвращает снимок; Items — копия среза.
func (l *List[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)

	return State[T]{Items: items, Loading: l.loading, Err: l.err}
}

// Items — сокращение для State().Items.
func (l *List[T]) Items() []T { return l.State().Items }

// Loading — сокращение для State().Loading.
func (l *List[T]) Loading() bool { return l.State().Loading }

// Dispose отменяет незавершённое чтение; дальнейшие изменения состояния запрещены.
// Повторный вызов безопасен.
func (l *List[T]) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return
	}
	l.disposed = true
	if l.cancel != nil {
		l.cancel()
	}
}
