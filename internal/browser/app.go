//go:build js && wasm

package browser

import (
	"strconv"
	"sync"
	"syscall/js"
	"time"

	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/motion"
	"g1.vc/site/internal/reveal"
	"g1.vc/site/internal/scroll"
	"g1.vc/site/internal/shell"
)

const portfolioNotice = "Portfolio item details would open here"

// App drives the server-rendered page: mobile menu, anchor scrolling,
// reveal-on-scroll, deferred feed embeds and the reduced-motion preference.
type App struct {
	doc js.Value

	mu       sync.Mutex
	state    shell.State
	watcher  *motion.Watcher
	scroller *scroll.Scroller
	blocks   []revealBlock
	widgets  []*feed.Widget
	releases []func()
	funcs    []js.Func

	stopOnce sync.Once
	done     chan struct{}
}

type revealBlock struct {
	el    js.Value
	block *reveal.Block
}

// Start attaches to the current document.
func Start() *App {
	a := &App{
		doc:  js.Global().Get("document"),
		done: make(chan struct{}),
	}

	a.watcher = motion.Watch(NewMediaQuery(motion.MediaQuery), a.setReduced)
	a.state.ReducedMotion = a.watcher.Reduced()
	a.scroller = scroll.New(NewDocument(a.watcher.Reduced))

	a.listen(a.doc, "click", a.onClick)
	a.listen(a.doc, "keydown", a.onKeyDown)
	a.listen(js.Global(), "pagehide", func(js.Value) { a.Stop() })

	a.render()
	a.trackReveals()
	a.mountFeeds()
	return a
}

// Done is closed once the app has stopped.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Stop cancels pending feed loads, observers and listeners.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.mu.Lock()
		widgets, releases, funcs := a.widgets, a.releases, a.funcs
		a.widgets, a.releases, a.funcs = nil, nil, nil
		a.mu.Unlock()

		for _, w := range widgets {
			w.Unmount()
		}
		for _, release := range releases {
			release()
		}
		a.watcher.Close()
		for _, fn := range funcs {
			fn.Release()
		}
		close(a.done)
	})
}

func (a *App) listen(target js.Value, event string, fn func(js.Value)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	target.Call("addEventListener", event, cb)
	a.releases = append(a.releases, func() { target.Call("removeEventListener", event, cb) })
	a.funcs = append(a.funcs, cb)
}

func (a *App) onClick(evt js.Value) {
	target := evt.Get("target")
	if !present(target) || target.Get("closest").IsUndefined() {
		return
	}

	if btn := target.Call("closest", "[data-scroll-target]"); present(btn) {
		a.scroller.ScrollToElement(btn.Get("dataset").Get("scrollTarget").String())
		return
	}
	if present(target.Call("closest", "[data-menu-toggle]")) {
		a.mu.Lock()
		a.state.ToggleMenu()
		a.mu.Unlock()
		a.render()
		return
	}
	if present(target.Call("closest", "[data-menu-close]")) {
		a.mu.Lock()
		a.state.CloseMenu()
		a.mu.Unlock()
		a.render()
	}
}

func (a *App) onKeyDown(evt js.Value) {
	if evt.Get("key").String() != "Enter" {
		return
	}
	target := evt.Get("target")
	if !present(target) || target.Get("closest").IsUndefined() {
		return
	}
	if present(target.Call("closest", "[data-portfolio-item]")) {
		js.Global().Call("alert", portfolioNotice)
	}
}

func (a *App) setReduced(reduced bool) {
	a.mu.Lock()
	a.state.ReducedMotion = reduced
	a.mu.Unlock()
	a.render()
}

// render applies the shell state and motion preference to the DOM.
func (a *App) render() {
	a.mu.Lock()
	st := a.state
	blocks := a.blocks
	a.mu.Unlock()

	a.doc.Get("documentElement").Get("dataset").Set("reducedMotion", strconv.FormatBool(st.ReducedMotion))

	if btn := a.doc.Call("querySelector", "[data-menu-toggle]"); present(btn) {
		btn.Call("setAttribute", "aria-label", st.MenuLabel())
		btn.Call("setAttribute", "aria-expanded", strconv.FormatBool(st.MenuOpen))
	}
	if icon := a.doc.Call("querySelector", "[data-menu-icon]"); present(icon) {
		icon.Call("setAttribute", "d", st.MenuIconPath())
	}
	if menu := a.doc.Call("getElementById", "mobile-menu"); present(menu) {
		menu.Set("className", st.MenuClasses())
	}
	each(a.doc.Call("querySelectorAll", "[data-nav-underline]"), func(el js.Value) {
		el.Set("className", st.UnderlineClasses())
	})
	for _, rb := range blocks {
		applyReveal(rb, st.ReducedMotion)
	}
}

func (a *App) trackReveals() {
	var observer IntersectionObserver
	each(a.doc.Call("querySelectorAll", "[data-reveal]"), func(el js.Value) {
		rb := revealBlock{el: el, block: reveal.NewBlock(el.Get("id").String())}
		a.mu.Lock()
		a.blocks = append(a.blocks, rb)
		a.mu.Unlock()

		release := reveal.Track(observer, rb.block, func(*reveal.Block) {
			applyReveal(rb, a.watcher.Reduced())
		})
		a.mu.Lock()
		a.releases = append(a.releases, release)
		a.mu.Unlock()
	})
}

func applyReveal(rb revealBlock, reduced bool) {
	base := rb.el.Get("dataset").Get("revealBase").String()
	rb.el.Set("className", base+" "+rb.block.Classes(reduced))
}

// mountFeeds starts a live widget for every feed the server left pending.
func (a *App) mountFeeds() {
	each(a.doc.Call("querySelectorAll", "[data-feed][data-feed-delay]"), func(el js.Value) {
		dataset := el.Get("dataset")
		platform, err := feed.ParsePlatform(dataset.Get("feed").String())
		if err != nil {
			js.Global().Get("console").Call("warn", err.Error())
			return
		}
		ms, err := strconv.Atoi(dataset.Get("feedDelay").String())
		if err != nil {
			ms = int(feed.DefaultDelay / time.Millisecond)
		}

		body := el.Call("querySelector", "[data-feed-body]")
		loaded := el.Call("querySelector", "template[data-feed-loaded]")
		if !present(body) || !present(loaded) {
			return
		}

		w := feed.NewWidget(platform, feed.Live{},
			feed.WithDelay(time.Duration(ms)*time.Millisecond),
			feed.OnChange(func(s feed.State) {
				if s != feed.StateLoaded {
					return
				}
				body.Set("innerHTML", loaded.Get("innerHTML"))
				el.Get("dataset").Delete("feedDelay")
				if src := platform.ScriptURL(); src != "" {
					injectScript(src)
				}
			}),
		)
		a.mu.Lock()
		a.widgets = append(a.widgets, w)
		a.mu.Unlock()
		w.Mount()
	})
}

// injectScript appends an async script; markup inserted through innerHTML
// does not execute.
func injectScript(src string) {
	doc := js.Global().Get("document")
	script := doc.Call("createElement", "script")
	script.Set("src", src)
	script.Set("async", true)
	script.Set("charset", "utf-8")
	doc.Get("body").Call("appendChild", script)
}
