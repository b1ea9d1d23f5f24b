package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	threshold float64
	fn        func()
	stopped   int
}

type fakeObserver struct {
	observed map[string]*observation
}

func newFakeObserver() *fakeObserver {
	return &fakeObserver{observed: make(map[string]*observation)}
}

func (o *fakeObserver) Observe(id string, threshold float64, fn func()) func() {
	obs := &observation{threshold: threshold, fn: fn}
	o.observed[id] = obs
	return func() { obs.stopped++ }
}

func (o *fakeObserver) Intersect(id string) {
	if obs, ok := o.observed[id]; ok {
		obs.fn()
	}
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "opacity-0 translate-y-10", Classes(false, false))
	assert.Equal(t, "opacity-100 translate-y-0", Classes(true, false))
	assert.Equal(t, "opacity-100 translate-y-0", Classes(false, true))
	assert.Equal(t, "opacity-100 translate-y-0", Classes(true, true))
}

func TestBlockTransitionsOnce(t *testing.T) {
	b := NewBlock("capital-card")
	assert.False(t, b.InView())

	assert.True(t, b.Enter())
	assert.False(t, b.Enter())
	assert.True(t, b.InView())
	assert.Equal(t, "opacity-100 translate-y-0", b.Classes(false))
}

func TestTrackFiresOnceAndStopsObserving(t *testing.T) {
	o := newFakeObserver()
	b := NewBlock("growth-card")
	entered := 0
	Track(o, b, func(*Block) { entered++ })

	obs := o.observed["growth-card"]
	require.NotNil(t, obs)
	assert.Equal(t, Threshold, obs.threshold)

	o.Intersect("growth-card")
	o.Intersect("growth-card")

	assert.True(t, b.InView())
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, obs.stopped)
}

func TestTrackReleaseBeforeIntersection(t *testing.T) {
	o := newFakeObserver()
	b := NewBlock("liquidity-card")
	release := Track(o, b, nil)

	release()
	release()
	assert.Equal(t, 1, o.observed["liquidity-card"].stopped)
	assert.False(t, b.InView())
}

func TestTrackSkipsSeenBlocks(t *testing.T) {
	o := newFakeObserver()
	b := NewBlock("infrastructure-card")
	b.Enter()

	Track(o, b, nil)
	assert.Empty(t, o.observed)
}

type eagerObserver struct{ stopped int }

func (o *eagerObserver) Observe(_ string, _ float64, fn func()) func() {
	fn()
	return func() { o.stopped++ }
}

func TestTrackHandlesSynchronousIntersection(t *testing.T) {
	o := &eagerObserver{}
	b := NewBlock("capital-card")
	entered := false
	Track(o, b, func(*Block) { entered = true })

	assert.True(t, entered)
	assert.True(t, b.InView())
	assert.Equal(t, 1, o.stopped)
}
