package carousel

import (
	"math"
	"time"
)

// DragThreshold is the pointer travel, in pixels, that turns a press into a drag.
const DragThreshold = 8

// DragMultiplier scales pointer travel into scroll distance.
const DragMultiplier = 1.5

// ScrollSettle is how long scroll events are ignored after a programmatic scroll.
const ScrollSettle = 500 * time.Millisecond

// Phase is the state of a drag gesture.
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Drag tracks a mouse drag over the video slider.
type Drag struct {
	phase       Phase
	startX      float64
	startY      float64
	startScroll float64
	settleUntil time.Time
}

// Phase returns the current gesture phase.
func (d *Drag) Phase() Phase { return d.phase }

// Press starts a gesture at pointer position (x, y) with the slider scrolled to
// scrollLeft. A press during an existing gesture restarts it.
func (d *Drag) Press(x, y, scrollLeft float64) {
	d.phase = Pressed
	d.startX, d.startY = x, y
	d.startScroll = scrollLeft
}

// Move feeds a pointer position. It returns the new scroll offset and true
// while dragging; below the threshold nothing scrolls.
func (d *Drag) Move(x, y float64) (float64, bool) {
	switch d.phase {
	case Pressed:
		if math.Hypot(x-d.startX, y-d.startY) < DragThreshold {
			return 0, false
		}
		// Crossing the threshold only switches modes; scrolling starts on the next move.
		d.phase = Dragging
		return 0, false
	case Dragging:
		return d.startScroll - (x-d.startX)*DragMultiplier, true
	default:
		return 0, false
	}
}

// Release ends the gesture and reports whether it was a click, meaning the
// pointer never crossed the threshold.
func (d *Drag) Release() bool {
	click := d.phase == Pressed
	d.phase = Idle
	return click
}

// Touch scrolls without a threshold; touch gestures never count as clicks.
func (d *Drag) Touch(x, scrollLeft float64) {
	d.phase = Dragging
	d.startX = x
	d.startScroll = scrollLeft
}

// ProgrammaticScroll marks the start of an animated scroll the slider itself
// issued, suppressing scroll-driven index updates until it settles.
func (d *Drag) ProgrammaticScroll(now time.Time) {
	d.settleUntil = now.Add(ScrollSettle)
}

// TrackScroll reports whether a scroll event at now should update the index.
func (d *Drag) TrackScroll(now time.Time) bool {
	return !now.Before(d.settleUntil)
}
