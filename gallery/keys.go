package gallery

import (
	"sort"
	"sync"
)

// Key is a keyboard key name as reported by the browser (KeyboardEvent.key)
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowLeft  Key = "ArrowLeft"
)

// KeyHandler reacts to a key press
type KeyHandler func(Key)

// KeySource lets a component listen to key presses for a limited time.
// The returned function removes the handler; calling it more than once is harmless.
type KeySource interface {
	Subscribe(h KeyHandler) (unsubscribe func())
}

// KeyDispatcher is the in-process KeySource of one product view
type KeyDispatcher struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]KeyHandler
}

// NewKeyDispatcher creates an empty dispatcher
func NewKeyDispatcher() *KeyDispatcher {
	return &KeyDispatcher{handlers: make(map[int]KeyHandler)}
}

// Ensure KeyDispatcher implements KeySource
var _ KeySource = (*KeyDispatcher)(nil)

// Subscribe registers h until the returned function is called
func (d *KeyDispatcher) Subscribe(h KeyHandler) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.handlers[id] = h
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.handlers, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch delivers key to every live handler in subscription order and reports
// whether anyone was listening. Handlers run outside the lock so they may unsubscribe.
func (d *KeyDispatcher) Dispatch(key Key) bool {
	d.mu.Lock()
	ids := make([]int, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]KeyHandler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, d.handlers[id])
	}
	d.mu.Unlock()

	for _, h := range handlers {
		h(key)
	}
	return len(handlers) > 0
}

// Listeners returns the number of registered handlers
func (d *KeyDispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}
