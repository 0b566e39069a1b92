package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStickyFollowsObservedHeader(t *testing.T) {
	var s Sticky
	assert.Equal(t, StickyHidden, s.Phase())

	s.Observe(false)
	assert.Equal(t, StickyVisible, s.Phase())

	s.Observe(true)
	assert.Equal(t, StickyHidden, s.Phase())
}

func TestStickyNavigateDelaysWhileVisible(t *testing.T) {
	var s Sticky
	s.Observe(false)

	assert.True(t, s.Navigate("/getting-started"))
	assert.Equal(t, StickyExiting, s.Phase())
	assert.Equal(t, "/getting-started", s.Pending())

	// A second click during the exit is not delayed again.
	assert.False(t, s.Navigate("/book-consultation"))
	// Scrolling during the exit does not resurrect the header.
	s.Observe(false)
	assert.Equal(t, StickyExiting, s.Phase())

	assert.Equal(t, "/getting-started", s.Done())
	assert.Equal(t, StickyHidden, s.Phase())
	assert.Empty(t, s.Pending())
}

func TestStickyNavigateWhenHiddenIsImmediate(t *testing.T) {
	var s Sticky
	assert.False(t, s.Navigate("/"))
	assert.Equal(t, StickyHidden, s.Phase())
	assert.Empty(t, s.Done())
}

func TestObserveTarget(t *testing.T) {
	assert.Equal(t, "hero-mobile-buttons", ObserveTarget(639))
	assert.Equal(t, "hero-header", ObserveTarget(640))
}

func TestHeroVideoFallback(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var h HeroVideo
	assert.False(t, h.Revealed(now))

	h.Start(now)
	assert.False(t, h.Revealed(now.Add(4*time.Second)))
	assert.True(t, h.Revealed(now.Add(5*time.Second)))

	var loaded HeroVideo
	loaded.Start(now)
	loaded.Loaded()
	assert.True(t, loaded.Revealed(now))
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "hidden", StickyHidden.String())
	assert.Equal(t, "visible", StickyVisible.String())
	assert.Equal(t, "exiting", StickyExiting.String())
}
