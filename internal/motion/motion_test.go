package motion

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeQuery mimics a MediaQueryList with add/remove listener semantics.
type fakeQuery struct {
	mu        sync.Mutex
	matches   bool
	listeners map[int]func(bool)
	next      int
}

func newFakeQuery(matches bool) *fakeQuery {
	return &fakeQuery{matches: matches, listeners: make(map[int]func(bool))}
}

func (q *fakeQuery) Matches() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.matches
}

func (q *fakeQuery) Subscribe(fn func(bool)) func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := q.next
	q.next++
	q.listeners[id] = fn
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		delete(q.listeners, id)
	}
}

func (q *fakeQuery) Set(matches bool) {
	q.mu.Lock()
	q.matches = matches
	fns := make([]func(bool), 0, len(q.listeners))
	for _, fn := range q.listeners {
		fns = append(fns, fn)
	}
	q.mu.Unlock()
	for _, fn := range fns {
		fn(matches)
	}
}

func (q *fakeQuery) Listeners() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.listeners)
}

func TestWatchReadsInitialState(t *testing.T) {
	assert.True(t, Watch(newFakeQuery(true), nil).Reduced())
	assert.False(t, Watch(newFakeQuery(false), nil).Reduced())
}

func TestWatchFollowsChanges(t *testing.T) {
	q := newFakeQuery(false)
	var seen []bool
	w := Watch(q, func(r bool) { seen = append(seen, r) })
	defer w.Close()

	q.Set(true)
	assert.True(t, w.Reduced())
	q.Set(false)
	assert.False(t, w.Reduced())
	assert.Equal(t, []bool{true, false}, seen)
}

func TestCloseUnsubscribes(t *testing.T) {
	q := newFakeQuery(false)
	w := Watch(q, nil)
	assert.Equal(t, 1, q.Listeners())

	w.Close()
	w.Close()
	assert.Equal(t, 0, q.Listeners())

	q.Set(true)
	assert.False(t, w.Reduced())
}

func TestFromRequest(t *testing.T) {
	cases := map[string]bool{
		"":                false,
		"no-preference":   false,
		"reduce":          true,
		`"reduce"`:        true,
		` "Reduce" `:      true,
		`"no-preference"`: false,
	}
	for header, want := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			r.Header.Set(ClientHintHeader, header)
		}
		got := FromRequest(r)
		assert.Equal(t, want, got.Matches(), "header %q", header)
		assert.Equal(t, want, Watch(got, nil).Reduced())
	}
}
