package listsync

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader — общий контракт списков разных типов.
type Loader interface {
	Load(ctx context.Context) error
	Dispose()
}

// Group загружает списки одного представления параллельно.
// Чтения независимы: ошибка одного не отменяет остальные.
type Group struct {
	loaders []Loader
}

// NewGroup собирает группу из списков.
func NewGroup(loaders ...Loader) *Group {
	return &Group{loaders: loaders}
}

// Add добавляет списки в группу.
func (g *Group) Add(loaders ...Loader) {
	g.loaders = append(g.loaders, loaders...)
}

// Load запускает все чтения и ждёт их завершения.
// Возвращает первую ошибку (если была); состояние каждого списка
// при этом выставлено.
func (g *Group) Load(ctx context.Context) error {
	var eg errgroup.Group
	for _, l := range g.loaders {
		eg.Go(func() error { return l.Load(ctx) })
	}
	return eg.Wait()
}

// Dispose закрывает все списки группы.
func (g *Group) Dispose() {
	for _, l := range g.loaders {
		l.Dispose()
	}
}
