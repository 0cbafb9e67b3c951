package viewport

import (
	"sync"
	"time"
)

// The controller owns the map's {center, zoom} state. The map widget never
// reads the state directly: it subscribes and receives updates, and animates
// between centers itself.

// AnimateDuration is the fixed fly-to animation length the map uses.
const AnimateDuration = 300 * time.Millisecond

// Seoul city centre, the session's starting viewport.
const (
	DefaultLat  = 37.5665
	DefaultLng  = 126.978
	DefaultZoom = 12
)

// FocusZoom is used when centering on a selection or a resolved location.
const FocusZoom = 16

// Update is published to subscribers whenever the viewport changes.
type Update struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// Controller is a reactive store of the current center and zoom.
type Controller struct {
	mu      sync.Mutex
	lat     float64
	lng     float64
	zoom    int
	set     bool
	nextSub int
	subs    map[int]chan Update
}

// New returns a controller with no center set. Subscribers receive nothing
// until the first CenterOn.
func New() *Controller {
	return &Controller{subs: map[int]chan Update{}}
}

// NewDefault returns a controller already centered on Seoul.
func NewDefault() *Controller {
	c := New()
	c.CenterOn(DefaultLat, DefaultLng, DefaultZoom)
	return c
}

// CenterOn moves the viewport. Repeated identical calls are idempotent: the
// state is unchanged and subscribers are not re-notified.
func (c *Controller) CenterOn(lat, lng float64, zoom int) {
	c.mu.Lock()
	if c.set && c.lat == lat && c.lng == lng && c.zoom == zoom {
		c.mu.Unlock()
		return
	}
	c.lat, c.lng, c.zoom, c.set = lat, lng, zoom, true
	u := Update{Lat: lat, Lng: lng, Zoom: zoom}
	subs := make([]chan Update, 0, len(c.subs))
	for _, ch := range c.subs {
		subs = append(subs, ch)
	}
	c.mu.Unlock()

	// Non-blocking send: a slow subscriber misses intermediate updates and
	// catches up on the next one (last-writer-wins).
	for _, ch := range subs {
		select {
		case ch <- u:
		default:
		}
	}
}

// Current returns the viewport state; ok is false before the first CenterOn.
func (c *Controller) Current() (u Update, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set {
		return Update{}, false
	}
	return Update{Lat: c.lat, Lng: c.lng, Zoom: c.zoom}, true
}

// Subscribe registers an observer. The returned cancel func must be called
// when the observer goes away.
func (c *Controller) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, 8)
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
	return ch, cancel
}
