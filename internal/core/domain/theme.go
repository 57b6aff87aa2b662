package domain

import "sync"

// Theme is the per-session dark mode preference. The owning controller is
// its only writer; readers subscribe to be told about changes.
type Theme struct {
	mu     sync.Mutex
	dark   bool
	nextID int
	subs   map[int]func(dark bool)
}

// NewTheme returns a theme starting in light mode.
func NewTheme() *Theme {
	return &Theme{subs: make(map[int]func(bool))}
}

// Dark reports whether dark mode is on.
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Toggle flips the mode and returns the new value.
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	t.dark = !t.dark
	dark := t.dark
	subs := t.snapshot()
	t.mu.Unlock()

	notify(subs, dark)
	return dark
}

// Set changes the mode. Subscribers are only called on an actual change.
func (t *Theme) Set(dark bool) {
	t.mu.Lock()
	if t.dark == dark {
		t.mu.Unlock()
		return
	}
	t.dark = dark
	subs := t.snapshot()
	t.mu.Unlock()

	notify(subs, dark)
}

// Subscribe registers fn and returns a func that removes it.
func (t *Theme) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

func (t *Theme) snapshot() []func(bool) {
	out := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(bool), dark bool) {
	for _, fn := range subs {
		fn(dark)
	}
}
