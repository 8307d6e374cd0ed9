package services

import "devfestsite/internal/domain"

// GalleryState tracks where the photo gallery is in its lifecycle.
type GalleryState int

const (
	// GalleryLoading means no photos have arrived yet.
	GalleryLoading GalleryState = iota
	// GalleryReady means photos are loaded and a slide is showing.
	GalleryReady
	// GallerySliding means a transition between slides is in progress.
	GallerySliding
)

func (s GalleryState) String() string {
	switch s {
	case GalleryLoading:
		return "loading"
	case GalleryReady:
		return "ready"
	case GallerySliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// SwipeThresholdPx is the minimum horizontal drag distance that counts as a
// swipe rather than a tap.
const SwipeThresholdPx = 50.0

// Gallery is the photo slideshow state machine. Navigation wraps around in
// both directions. Methods report whether the caller should restart the
// autoplay timer.
type Gallery struct {
	photos  []domain.Photo
	index   int
	state   GalleryState
	hovered bool
}

// NewGallery returns a gallery in the loading state.
func NewGallery() *Gallery {
	return &Gallery{state: GalleryLoading}
}

// SetPhotos installs the fetched photo list. An empty list keeps the gallery
// in the loading state so the caller can fall back to the album link.
func (g *Gallery) SetPhotos(photos []domain.Photo) {
	if len(photos) == 0 {
		return
	}
	g.photos = photos
	g.index = 0
	g.state = GalleryReady
}

// Photos returns the installed photo list.
func (g *Gallery) Photos() []domain.Photo { return g.photos }

// Index returns the current slide position.
func (g *Gallery) Index() int { return g.index }

// State returns the current lifecycle state.
func (g *Gallery) State() GalleryState { return g.state }

// Current returns the photo showing now, or false while loading.
func (g *Gallery) Current() (domain.Photo, bool) {
	if g.state == GalleryLoading {
		return domain.Photo{}, false
	}
	return g.photos[g.index], true
}

// Next advances one slide, wrapping past the end. Returns true when the
// autoplay timer should restart.
func (g *Gallery) Next() bool {
	return g.goTo(g.index + 1)
}

// Prev steps back one slide, wrapping before the start.
func (g *Gallery) Prev() bool {
	return g.goTo(g.index - 1)
}

// GoTo jumps to the slide at i, wrapping in either direction.
func (g *Gallery) GoTo(i int) bool {
	return g.goTo(i)
}

// Advance is the autoplay tick. It is a no-op while the pointer hovers the
// gallery, and unlike manual navigation it never restarts the timer.
func (g *Gallery) Advance() {
	if g.hovered {
		return
	}
	g.goTo(g.index + 1)
}

// Hover records whether the pointer is over the gallery, pausing autoplay.
func (g *Gallery) Hover(over bool) {
	g.hovered = over
}

// EndSwipe resolves a horizontal drag of deltaX pixels. Drags shorter than
// SwipeThresholdPx do nothing; a leftward drag goes forward, rightward back.
func (g *Gallery) EndSwipe(deltaX float64) bool {
	if deltaX > SwipeThresholdPx {
		return g.Prev()
	}
	if deltaX < -SwipeThresholdPx {
		return g.Next()
	}
	return false
}

// SlideDone marks the in-flight transition finished.
func (g *Gallery) SlideDone() {
	if g.state == GallerySliding {
		g.state = GalleryReady
	}
}

func (g *Gallery) goTo(i int) bool {
	if g.state != GalleryReady {
		return false
	}
	n := len(g.photos)
	g.index = ((i % n) + n) % n
	g.state = GallerySliding
	return true
}
