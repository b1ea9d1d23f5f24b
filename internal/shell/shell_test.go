package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuToggle(t *testing.T) {
	var s State
	assert.Equal(t, "Open menu", s.MenuLabel())
	assert.Contains(t, s.MenuClasses(), "hidden")

	s.ToggleMenu()
	assert.True(t, s.MenuOpen)
	assert.Equal(t, "Close menu", s.MenuLabel())
	assert.Equal(t, closeIconPath, s.MenuIconPath())
	assert.Contains(t, s.MenuClasses(), "animate-fade-in-down")

	s.ToggleMenu()
	assert.False(t, s.MenuOpen)
	assert.Equal(t, openIconPath, s.MenuIconPath())
}

func TestCloseMenuIsIdempotent(t *testing.T) {
	s := State{MenuOpen: true}
	s.CloseMenu()
	s.CloseMenu()
	assert.False(t, s.MenuOpen)
}

func TestReducedMotionVariants(t *testing.T) {
	s := State{MenuOpen: true, ReducedMotion: true}
	assert.Contains(t, s.MenuClasses(), " block")
	assert.NotContains(t, s.MenuClasses(), "animate")
	assert.Contains(t, s.UnderlineClasses(), "group-hover:opacity-100")

	s.ReducedMotion = false
	assert.Contains(t, s.UnderlineClasses(), "group-hover:scale-x-100")
}
