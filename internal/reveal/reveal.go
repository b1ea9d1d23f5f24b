// Package reveal defers a block's entrance animation until the block first
// scrolls into view.
package reveal

import "sync"

// Threshold is the visible fraction of a block that counts as in view.
const Threshold = 0.1

// Visual state classes of a block.
const (
	HiddenClasses  = "opacity-0 translate-y-10"
	VisibleClasses = "opacity-100 translate-y-0"
)

// Observer reports viewport intersections for an element.
type Observer interface {
	// Observe calls fn each time the element with the given id reaches
	// threshold visibility, until stop runs.
	Observe(id string, threshold float64, fn func()) (stop func())
}

// Block is the in-view state of one element. It only ever moves from hidden
// to visible.
type Block struct {
	ID string

	mu     sync.Mutex
	inView bool
	stop   func()
}

// NewBlock returns a hidden block.
func NewBlock(id string) *Block {
	return &Block{ID: id}
}

// InView reports whether the block has been seen.
func (b *Block) InView() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inView
}

// Enter marks the block as seen. It reports whether this call made the
// transition. Nothing moves a seen block back to hidden, so losing the
// intersection later has no effect.
func (b *Block) Enter() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inView {
		return false
	}
	b.inView = true
	return true
}

// Classes returns the block's visual state classes.
func (b *Block) Classes(reduced bool) string {
	return Classes(b.InView(), reduced)
}

// Classes returns the final state when the block is in view or motion is
// reduced, and the hidden offset state otherwise.
func Classes(inView, reduced bool) string {
	if inView || reduced {
		return VisibleClasses
	}
	return HiddenClasses
}

// Track observes b until its first intersection, then stops observing and
// calls onEnter. The returned func releases the observation early.
func Track(o Observer, b *Block, onEnter func(*Block)) (release func()) {
	if b.InView() {
		return func() {}
	}
	var once sync.Once
	stop := o.Observe(b.ID, Threshold, func() {
		if !b.Enter() {
			return
		}
		b.release()
		if onEnter != nil {
			onEnter(b)
		}
	})
	b.mu.Lock()
	if b.inView {
		b.mu.Unlock()
		stop()
		return func() {}
	}
	b.stop = func() { once.Do(stop) }
	b.mu.Unlock()
	return b.release
}

func (b *Block) release() {
	b.mu.Lock()
	stop := b.stop
	b.stop = nil
	b.mu.Unlock()
	if stop != nil {
		stop()
	}
}
