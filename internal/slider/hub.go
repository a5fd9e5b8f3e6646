package slider

import (
	"sync"

	"github.com/google/uuid"
)

// Hub — реестр живых каруселей по идентификатору представления.
// SSE-поток регистрирует карусель, POST-навигация находит её по id.
type Hub struct {
	mu    sync.RWMutex
	views map[string]*Carousel
}

// NewHub создаёт пустой реестр.
func NewHub() *Hub {
	return &Hub{views: make(map[string]*Carousel)}
}

// Register добавляет карусель и возвращает её id.
func (h *Hub) Register(c *Carousel) string {
	id := uuid.NewString()

	h.mu.Lock()
	h.views[id] = c
	h.mu.Unlock()

	return id
}

// Get ищет карусель по id.
func (h *Hub) Get(id string) (*Carousel, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.views[id]
	return c, ok
}

// Remove удаляет карусель из реестра и закрывает её.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	c, ok := h.views[id]
	delete(h.views, id)
	h.mu.Unlock()

	if ok {
		c.Close()
	}
}

// Len — число зарегистрированных каруселей.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.views)
}

// Close закрывает все карусели (остановка сервера).
func (h *Hub) Close() {
	h.mu.Lock()
	views := h.views
	h.views = make(map[string]*Carousel)
	h.mu.Unlock()

	for _, c := range views {
		c.Close()
	}
}
