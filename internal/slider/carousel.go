// slider реализует карусель главной страницы: текущий индекс над n слайдами,
// автопрокрутку по таймеру и реестр живых каруселей (по одной на SSE-поток).
package slider

import (
	"errors"
	"sync"
	"time"
)

// DefaultInterval — период автопрокрутки по умолчанию.
const DefaultInterval = 5 * time.Second

// ErrOutOfRange — индекс вне [0, n).
var ErrOutOfRange = errors.New("slide index out of range")

// Carousel — состояние одной карусели.
//
// Инварианты:
//   - при n > 0 всегда 0 <= current < n, при n == 0 current == 0;
//   - таймер существует только при n > 1 и до Close;
//   - таймер пересоздаётся только при смене n; ручная навигация его не трогает.
type Carousel struct {
	interval time.Duration

	mu      sync.Mutex
	n       int
	current int
	stop    chan struct{}
	closed  bool
	changed chan struct{}
}

// New создаёт карусель на n слайдов. interval <= 0 заменяется на DefaultInterval.
func New(n int, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if n < 0 {
		n = 0
	}

	c := &Carousel{
		interval: interval,
		n:        n,
		changed:  make(chan struct{}, 1),
	}

	c.mu.Lock()
	c.startTimerLocked()
	c.mu.Unlock()

	return c
}

// Changes сигналит о смене текущего слайда. Сигналы схлопываются:
// получатель читает актуальное значение через Current.
func (c *Carousel) Changes() <-chan struct{} { return c.changed }

// Current возвращает текущий индекс.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Count возвращает число слайдов.
func (c *Carousel) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// TimerActive сообщает, работает ли автопрокрутка.
func (c *Carousel) TimerActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Next переходит к (current+1) mod n.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.n == 0 {
		return 0
	}
	c.setLocked((c.current + 1) % c.n)
	return c.current
}

// Prev переходит к (current-1+n) mod n.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.n == 0 {
		return 0
	}
	c.setLocked((c.current - 1 + c.n) % c.n)
	return c.current
}

// GoTo выбирает слайд i.
func (c *Carousel) GoTo(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= c.n {
		return ErrOutOfRange
	}
	c.setLocked(i)
	return nil
}

// SetCount меняет число слайдов. Таймер пересоздаётся только если n изменилось;
// current прижимается к новому диапазону.
func (c *Carousel) SetCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n == c.n || c.closed {
		return
	}

	c.stopTimerLocked()
	c.n = n

	switch {
	case n == 0:
		c.setLocked(0)
	case c.current >= n:
		c.setLocked(n - 1)
	}

	c.startTimerLocked()
}

// Close останавливает таймер. Повторный вызов безопасен.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopTimerLocked()
}

func (c *Carousel) setLocked(i int) {
	if i == c.current {
		return
	}
	c.current = i

	select {
	case c.changed <- struct{}{}:
	default:
	}
}

func (c *Carousel) startTimerLocked() {
	if c.n <= 1 || c.closed {
		return
	}

	stop := make(chan struct{})
	c.stop = stop

	ticker := time.NewTicker(c.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.tick(stop)
			}
		}
	}()
}

func (c *Carousel) stopTimerLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// tick игнорирует сработавший таймер, если его уже заменили или остановили.
func (c *Carousel) tick(owner chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != owner || c.n <= 1 {
		return
	}
	c.setLocked((c.current + 1) % c.n)
}
