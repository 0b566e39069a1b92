// Package carousel holds the index arithmetic and gesture state of the two
// review sliders. Nothing here touches the DOM; the browser client and the
// server-rendered fallback both drive these types.
package carousel

import "time"

// MobileBreakpoint is the viewport width below which one card is visible.
const MobileBreakpoint = 1000

// Card counts per view.
const (
	MobileVisible  = 1
	DesktopVisible = 4
)

// AnimationDuration is how long the testimonial slider ignores navigation
// after a move.
const AnimationDuration = 600 * time.Millisecond

// VisibleCount returns how many video cards fit the viewport.
func VisibleCount(viewportWidth int) int {
	if viewportWidth < MobileBreakpoint {
		return MobileVisible
	}
	return DesktopVisible
}

// Wrap is a slider whose index wraps around in both directions.
type Wrap struct {
	Len   int
	Index int
}

// Next moves one item forward, wrapping to the start.
func (w Wrap) Next() Wrap {
	if w.Len <= 0 {
		return Wrap{}
	}
	w.Index = mod(w.Index+1, w.Len)
	return w
}

// Prev moves one item back, wrapping to the end.
func (w Wrap) Prev() Wrap {
	if w.Len <= 0 {
		return Wrap{}
	}
	w.Index = mod(w.Index-1, w.Len)
	return w
}

// At returns a wrap slider at index i, normalised into range.
func (w Wrap) At(i int) Wrap {
	if w.Len <= 0 {
		return Wrap{}
	}
	w.Index = mod(i, w.Len)
	return w
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Clamp is a paged slider that stops at both ends.
type Clamp struct {
	Len     int
	Visible int
	Index   int
}

// NewClamp returns a clamp slider at index, clamped into range.
func NewClamp(length, visible, index int) Clamp {
	if visible < 1 {
		visible = 1
	}
	c := Clamp{Len: length, Visible: visible}
	return c.Jump(index)
}

// MaxIndex is the last index that still fills a full view.
func (c Clamp) MaxIndex() int {
	return max(0, c.Len-c.Visible)
}

// Next advances by a full view, stopping at MaxIndex.
func (c Clamp) Next() Clamp {
	if c.Index < c.MaxIndex() {
		c.Index = min(c.MaxIndex(), c.Index+c.Visible)
	}
	return c
}

// Prev moves back by a full view, stopping at zero.
func (c Clamp) Prev() Clamp {
	if c.Index > 0 {
		c.Index = max(0, c.Index-c.Visible)
	}
	return c
}

// Jump moves directly to i, clamped into [0, MaxIndex].
func (c Clamp) Jump(i int) Clamp {
	c.Index = min(max(0, i), c.MaxIndex())
	return c
}

// CanPrev reports whether Prev would move.
func (c Clamp) CanPrev() bool { return c.Index > 0 }

// CanNext reports whether Next would move.
func (c Clamp) CanNext() bool { return c.Index < c.Len-c.Visible }

// ShowNavigation reports whether the arrows are rendered at all.
func (c Clamp) ShowNavigation() bool { return c.Len > c.Visible }

// ShowBullets reports whether the bullet row is rendered.
func (c Clamp) ShowBullets() bool { return c.ShowNavigation() && c.Len > 2 }

// Bullet is one pagination dot.
type Bullet struct {
	Target int
	Active bool
}

// Bullets lists the pagination dots. With one visible card there is a dot per
// card; otherwise a dot per page, each jumping to the start of its page.
func (c Clamp) Bullets() []Bullet {
	if c.Len <= 0 {
		return nil
	}
	visible := max(1, c.Visible)
	if visible == 1 {
		out := make([]Bullet, c.Len)
		for i := range out {
			out[i] = Bullet{Target: i, Active: i == c.Index}
		}
		return out
	}
	pages := (c.Len + visible - 1) / visible
	active := c.Index / visible
	out := make([]Bullet, pages)
	for i := range out {
		out[i] = Bullet{Target: min(i*visible, c.MaxIndex()), Active: i == active}
	}
	return out
}

// IndexFromScroll derives the slider index from a horizontal scroll offset.
// cardWidth includes the gap between cards. On mobile the card whose centre is
// nearest the viewport centre wins; on desktop the offset is rounded to the
// nearest card.
func IndexFromScroll(scrollLeft, viewportWidth, cardWidth float64, length, visible int) int {
	if length <= 0 || cardWidth <= 0 {
		return 0
	}
	if visible == MobileVisible {
		centre := scrollLeft + viewportWidth/2
		best, bestDist := 0, -1.0
		for i := 0; i < length; i++ {
			cardCentre := float64(i)*cardWidth + (cardWidth)/2
			d := centre - cardCentre
			if d < 0 {
				d = -d
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		return best
	}
	idx := int(scrollLeft/cardWidth + 0.5)
	return min(max(0, idx), length-1)
}

// ScrollTarget is the scroll offset that shows index at the start of the view.
func (c Clamp) ScrollTarget(cardWidth, maxScroll float64) float64 {
	target := float64(min(c.Index, c.MaxIndex())) * cardWidth
	if target > maxScroll {
		return maxScroll
	}
	return target
}
