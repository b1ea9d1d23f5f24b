// Package feed implements the social feed widget: a per-platform embed whose
// third-party load is masked behind a placeholder.
//
// A Widget moves from StateInitial to StateLoaded exactly once, a fixed delay
// after Mount, and only when its Provider defers. Unmount cancels the pending
// transition.
package feed

import (
	"strconv"
	"sync"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultDelay is how long the loading indicator is shown before the embed.
const DefaultDelay = time.Second

// State is the widget's load state.
type State int

const (
	StateInitial State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "initial"
}

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces the clock used to schedule the transition.
func WithClock(c Clock) Option {
	return func(w *Widget) { w.clock = c }
}

// WithDelay overrides DefaultDelay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(w *Widget) {
		if d > 0 {
			w.delay = d
		}
	}
}

// Preloaded starts the widget in StateLoaded. Pages served without the
// browser client use it so live embeds render directly.
func Preloaded() Option {
	return func(w *Widget) { w.state = StateLoaded }
}

// OnChange registers fn to run after the widget reaches StateLoaded.
func OnChange(fn func(State)) Option {
	return func(w *Widget) { w.onChange = fn }
}

// Widget is one feed instance.
type Widget struct {
	platform Platform
	provider Provider
	clock    Clock
	delay    time.Duration
	onChange func(State)

	mu       sync.Mutex
	state    State
	timer    Timer
	mounted  bool
	disposed bool
}

// NewWidget builds an unmounted widget.
func NewWidget(p Platform, provider Provider, opts ...Option) *Widget {
	w := &Widget{
		platform: p,
		provider: provider,
		clock:    SystemClock,
		delay:    DefaultDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Platform returns the widget's platform.
func (w *Widget) Platform() Platform { return w.platform }

// Delay returns the configured transition delay.
func (w *Widget) Delay() time.Duration { return w.delay }

// Deferred reports whether mounting schedules a transition.
func (w *Widget) Deferred() bool { return w.provider.Deferred() }

// State returns the current state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Mount schedules the transition. Calling Mount again, or after Unmount,
// does nothing.
func (w *Widget) Mount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted || w.disposed {
		return
	}
	w.mounted = true
	if !w.provider.Deferred() || w.state == StateLoaded {
		return
	}
	w.timer = w.clock.AfterFunc(w.delay, w.fire)
}

// Unmount cancels any pending transition. The widget cannot be mounted again.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mounted = false
	w.disposed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Widget) fire() {
	w.mu.Lock()
	if !w.mounted || w.state == StateLoaded {
		w.mu.Unlock()
		return
	}
	w.state = StateLoaded
	w.timer = nil
	fn := w.onChange
	w.mu.Unlock()

	if fn != nil {
		fn(StateLoaded)
	}
}

// Body renders the widget contents for its current state.
func (w *Widget) Body() g.Node {
	return w.provider.Render(w.platform, w.State())
}

// Node renders the widget frame. Deferred widgets carry their platform, their
// delay and the loaded markup in a template so the browser client can mount a
// matching widget and perform the swap.
func (w *Widget) Node() g.Node {
	pending := w.Deferred() && w.State() == StateInitial
	return h.Div(
		h.ID("feed-"+w.platform.String()),
		h.Class("min-h-[400px] bg-white rounded-xl shadow-sm overflow-hidden"),
		h.Data("feed", w.platform.String()),
		g.If(pending, h.Data("feed-delay", formatMillis(w.delay))),
		h.Div(h.Data("feed-body", ""), w.Body()),
		g.If(pending, h.Template(h.Data("feed-loaded", ""), w.provider.Render(w.platform, StateLoaded))),
		g.If(w.Deferred() && !pending && w.platform.ScriptURL() != "",
			h.Script(h.Async(), h.Src(w.platform.ScriptURL()), h.Charset("utf-8")),
		),
	)
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
