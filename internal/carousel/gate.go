package carousel

import "time"

// Gate blocks navigation while a slide animation runs. The zero value is idle.
type Gate struct {
	until time.Time
}

// Animating reports whether the gate is closed at now.
func (g *Gate) Animating(now time.Time) bool {
	return now.Before(g.until)
}

// TryStart opens an animation window of AnimationDuration when the gate is
// idle and reports whether it did. Requests during an animation are dropped.
func (g *Gate) TryStart(now time.Time) bool {
	if g.Animating(now) {
		return false
	}
	g.until = now.Add(AnimationDuration)
	return true
}

// Testimonials couples the wrap slider with its animation gate.
type Testimonials struct {
	Slider Wrap
	Gate   Gate
}

// Next advances unless an animation is running.
func (t *Testimonials) Next(now time.Time) bool {
	if !t.Gate.TryStart(now) {
		return false
	}
	t.Slider = t.Slider.Next()
	return true
}

// Prev steps back unless an animation is running.
func (t *Testimonials) Prev(now time.Time) bool {
	if !t.Gate.TryStart(now) {
		return false
	}
	t.Slider = t.Slider.Prev()
	return true
}
