// Package motion tracks whether the visitor prefers reduced motion.
package motion

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// MediaQuery is the query the browser evaluates.
const MediaQuery = "(prefers-reduced-motion: reduce)"

// ClientHintHeader carries the preference on requests once the server has
// asked for it with Accept-CH.
const ClientHintHeader = "Sec-CH-Prefers-Reduced-Motion"

// Query is a live boolean media query.
type Query interface {
	Matches() bool
	// Subscribe calls fn with the new match state on every change until the
	// returned cancel func runs.
	Subscribe(fn func(matches bool)) (cancel func())
}

// Watcher keeps the reduced-motion flag current for as long as it is open.
type Watcher struct {
	reduced  atomic.Bool
	cancel   func()
	once     sync.Once
	onChange func(bool)
}

// Watch reads q synchronously and subscribes to its changes. onChange may be
// nil; when set it runs after every change.
func Watch(q Query, onChange func(reduced bool)) *Watcher {
	w := &Watcher{onChange: onChange}
	w.reduced.Store(q.Matches())
	w.cancel = q.Subscribe(w.set)
	return w
}

func (w *Watcher) set(matches bool) {
	w.reduced.Store(matches)
	if w.onChange != nil {
		w.onChange(matches)
	}
}

// Reduced reports the last known preference.
func (w *Watcher) Reduced() bool {
	return w.reduced.Load()
}

// Close releases the subscription. Later changes are not observed.
func (w *Watcher) Close() {
	w.once.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
	})
}

// Static is a query whose answer never changes.
type Static bool

// Matches returns the fixed value.
func (s Static) Matches() bool { return bool(s) }

// Subscribe never calls fn.
func (Static) Subscribe(func(bool)) func() { return func() {} }

// FromRequest reads the client hint. Browsers that do not send it are
// treated as not preferring reduced motion.
func FromRequest(r *http.Request) Static {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ClientHintHeader)), `"`)
	return Static(strings.EqualFold(v, "reduce"))
}
