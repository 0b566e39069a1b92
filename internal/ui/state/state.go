// Package state holds the small browser-side state machines of the landing
// page. They are pure Go so the WASM client and tests drive the same code.
package state

import (
	"strings"
	"time"
)

// StickyExitDuration is how long the sticky header animates out before a
// navigation it delayed is performed.
const StickyExitDuration = 600 * time.Millisecond

// MobileObserveBreakpoint is the viewport width below which the sticky header
// follows the mobile button row instead of the main header.
const MobileObserveBreakpoint = 640

// StickyPhase is the visibility of the sticky header.
type StickyPhase int

const (
	StickyHidden StickyPhase = iota
	StickyVisible
	StickyExiting
)

func (p StickyPhase) String() string {
	switch p {
	case StickyVisible:
		return "visible"
	case StickyExiting:
		return "exiting"
	default:
		return "hidden"
	}
}

// Sticky tracks the header that slides in once the page header scrolls away.
type Sticky struct {
	phase   StickyPhase
	pending string
}

// Phase returns the current visibility.
func (s *Sticky) Phase() StickyPhase { return s.phase }

// Pending returns the path waiting on the exit animation, if any.
func (s *Sticky) Pending() string { return s.pending }

// Observe feeds the intersection state of the observed header. While the
// header is on screen the sticky copy hides; once it leaves, the copy shows.
// Observations during an exit are ignored.
func (s *Sticky) Observe(intersecting bool) {
	if s.phase == StickyExiting {
		return
	}
	if intersecting {
		s.phase = StickyHidden
	} else {
		s.phase = StickyVisible
	}
}

// Navigate handles a click on a sticky header link. When the header is visible
// it starts the exit animation and returns true: the caller must cancel the
// default navigation and call Done after StickyExitDuration. Otherwise it
// returns false and navigation proceeds normally.
func (s *Sticky) Navigate(path string) bool {
	if s.phase != StickyVisible {
		return false
	}
	s.phase = StickyExiting
	s.pending = strings.TrimSpace(path)
	return true
}

// Done finishes the exit animation and returns the path to navigate to.
func (s *Sticky) Done() string {
	path := s.pending
	s.pending = ""
	if s.phase == StickyExiting {
		s.phase = StickyHidden
	}
	return path
}

// ObserveTarget names the element the sticky header should follow.
func ObserveTarget(viewportWidth int) string {
	if viewportWidth < MobileObserveBreakpoint {
		return "hero-mobile-buttons"
	}
	return "hero-header"
}

// HeroVideoFallback is how long the loading overlay waits for the hero video
// before giving up and revealing it anyway.
const HeroVideoFallback = 5 * time.Second

// HeroVideo tracks the loading overlay over the hero video.
type HeroVideo struct {
	started time.Time
	loaded  bool
}

// Start records when the video element was mounted.
func (h *HeroVideo) Start(now time.Time) { h.started = now }

// Loaded marks the video data as available.
func (h *HeroVideo) Loaded() { h.loaded = true }

// Revealed reports whether the overlay should be gone at now.
func (h *HeroVideo) Revealed(now time.Time) bool {
	if h.loaded {
		return true
	}
	return !h.started.IsZero() && now.Sub(h.started) >= HeroVideoFallback
}

// ProgressExitDuration is how long the funnel progress bar takes to empty
// before a step link is followed.
const ProgressExitDuration = 600 * time.Millisecond
