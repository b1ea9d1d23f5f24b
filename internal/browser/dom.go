//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"

	"g1.vc/site/internal/scroll"
)

// Document implements scroll.Document over window and document.
type Document struct {
	win     js.Value
	doc     js.Value
	reduced func() bool
}

// NewDocument returns the live document. When reduced reports true, smooth
// scrolls jump instead.
func NewDocument(reduced func() bool) *Document {
	win := js.Global()
	return &Document{win: win, doc: win.Get("document"), reduced: reduced}
}

// ElementTop returns the element's top relative to the viewport.
func (d *Document) ElementTop(id string) (float64, bool) {
	el := d.doc.Call("getElementById", id)
	if !present(el) {
		return 0, false
	}
	return el.Call("getBoundingClientRect").Get("top").Float(), true
}

// ScrollY returns the current vertical scroll offset.
func (d *Document) ScrollY() float64 {
	return d.win.Get("pageYOffset").Float()
}

// ScrollTo scrolls the window to top.
func (d *Document) ScrollTo(top float64, behavior scroll.Behavior) {
	b := string(behavior)
	if behavior == scroll.Smooth && d.reduced != nil && d.reduced() {
		b = "auto"
	}
	d.win.Call("scrollTo", map[string]any{"top": top, "behavior": b})
}

// MediaQuery implements motion.Query over matchMedia.
type MediaQuery struct {
	mql js.Value
}

// NewMediaQuery evaluates query in the window.
func NewMediaQuery(query string) MediaQuery {
	return MediaQuery{mql: js.Global().Call("matchMedia", query)}
}

// Matches reports the current match state.
func (q MediaQuery) Matches() bool {
	return q.mql.Get("matches").Bool()
}

// Subscribe listens for change events.
func (q MediaQuery) Subscribe(fn func(bool)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0].Get("matches").Bool())
		return nil
	})
	q.mql.Call("addEventListener", "change", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mql.Call("removeEventListener", "change", cb)
			cb.Release()
		})
	}
}

// IntersectionObserver implements reveal.Observer with one native observer
// per element.
type IntersectionObserver struct{}

// Observe calls fn whenever the element crosses threshold into view.
func (IntersectionObserver) Observe(id string, threshold float64, fn func()) func() {
	el := js.Global().Get("document").Call("getElementById", id)
	if !present(el) {
		return func() {}
	}

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			if entries.Index(i).Get("isIntersecting").Bool() {
				fn()
				break
			}
		}
		return nil
	})
	obs := js.Global().Get("IntersectionObserver").New(cb, map[string]any{"threshold": threshold})
	obs.Call("observe", el)

	var once sync.Once
	return func() {
		once.Do(func() {
			obs.Call("disconnect")
			cb.Release()
		})
	}
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func each(list js.Value, fn func(js.Value)) {
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}
