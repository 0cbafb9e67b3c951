package viewport

import (
	"testing"
	"time"
)

func TestCenterOnIdempotent(t *testing.T) {
	c := New()
	c.CenterOn(37.5512, 126.9882, 16)
	first, ok := c.Current()
	if !ok {
		t.Fatal("Current not set after CenterOn")
	}
	c.CenterOn(37.5512, 126.9882, 16)
	second, _ := c.Current()
	if first != second {
		t.Errorf("repeated identical CenterOn changed state: %v vs %v", first, second)
	}
}

func TestIdenticalCenterOnDoesNotRenotify(t *testing.T) {
	c := New()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.CenterOn(37.5, 127.0, 12)
	c.CenterOn(37.5, 127.0, 12)

	if got := drain(ch); got != 1 {
		t.Errorf("got %d notifications, want 1", got)
	}
}

func TestUnsetCenterIsNoOp(t *testing.T) {
	c := New()
	if _, ok := c.Current(); ok {
		t.Error("fresh controller reports a center")
	}
	ch, cancel := c.Subscribe()
	defer cancel()
	if got := drain(ch); got != 0 {
		t.Errorf("subscriber notified %d times with no center set", got)
	}
}

func TestSubscriberReceivesUpdates(t *testing.T) {
	c := NewDefault()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.CenterOn(37.5826, 126.983, FocusZoom)
	select {
	case u := <-ch:
		want := Update{Lat: 37.5826, Lng: 126.983, Zoom: FocusZoom}
		if u != want {
			t.Errorf("got %v, want %v", u, want)
		}
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	c := New()
	ch, cancel := c.Subscribe()
	cancel()
	c.CenterOn(37.5, 127.0, 12)
	if got := drain(ch); got != 0 {
		t.Errorf("cancelled subscriber received %d updates", got)
	}
}

func TestLastWriterWins(t *testing.T) {
	c := New()
	// Simulates a late location fix arriving after the user moved the map:
	// the fix is still applied.
	c.CenterOn(37.5826, 126.983, FocusZoom) // user selected a place
	c.CenterOn(37.5665, 126.978, FocusZoom) // late location fix
	got, _ := c.Current()
	want := Update{Lat: 37.5665, Lng: 126.978, Zoom: FocusZoom}
	if got != want {
		t.Errorf("viewport = %v, want %v", got, want)
	}
}

func drain(ch <-chan Update) int {
	n := 0
	for {
		select {
		case <-ch:
			n++
		default:
			return n
		}
	}
}
