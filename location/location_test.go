package location

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResolveDeliversFix(t *testing.T) {
	p := New()
	req := p.Begin(time.Second)

	go func() {
		if err := p.Resolve(req.ID, Fix{Lat: 37.5665, Lng: 126.978}); err != nil {
			t.Errorf("Resolve: %v", err)
		}
	}()

	fix, err := p.Wait(context.Background(), req)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if fix.Lat != 37.5665 || fix.Lng != 126.978 {
		t.Errorf("fix = %v", fix)
	}
}

func TestFailDeliversTypedReason(t *testing.T) {
	for _, reason := range []string{ReasonUnsupported, ReasonDenied, ReasonTimeout} {
		p := New()
		req := p.Begin(time.Second)
		go p.Fail(req.ID, reason)

		_, err := p.Wait(context.Background(), req)
		var lerr *Error
		if !errors.As(err, &lerr) {
			t.Fatalf("Wait after Fail(%q): %v, want *Error", reason, err)
		}
		if lerr.Reason != reason {
			t.Errorf("reason = %q, want %q", lerr.Reason, reason)
		}
	}
}

func TestUnknownReasonNormalised(t *testing.T) {
	p := New()
	req := p.Begin(time.Second)
	go p.Fail(req.ID, "kCLErrorLocationUnknown")

	_, err := p.Wait(context.Background(), req)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Reason != ReasonUnknown {
		t.Errorf("got %v, want unknown reason", err)
	}
}

func TestWaitTimesOut(t *testing.T) {
	p := New()
	req := p.Begin(20 * time.Millisecond)

	start := time.Now()
	_, err := p.Wait(context.Background(), req)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Reason != ReasonTimeout {
		t.Fatalf("got %v, want timeout", err)
	}
	if time.Since(start) > time.Second {
		t.Error("timeout took far longer than the deadline")
	}

	// A late resolution after timeout is rejected and discarded.
	if err := p.Resolve(req.ID, Fix{Lat: 1, Lng: 1}); err != ErrStale {
		t.Errorf("late Resolve = %v, want ErrStale", err)
	}
}

func TestNewRequestSupersedesPrior(t *testing.T) {
	p := New()
	first := p.Begin(time.Second)
	second := p.Begin(time.Second)

	// Resolving against the superseded request id is rejected.
	if err := p.Resolve(first.ID, Fix{Lat: 1, Lng: 1}); err != ErrStale {
		t.Errorf("stale Resolve = %v, want ErrStale", err)
	}

	// The new request still works.
	go p.Resolve(second.ID, Fix{Lat: 37.5, Lng: 127.0})
	fix, err := p.Wait(context.Background(), second)
	if err != nil {
		t.Fatalf("Wait on superseding request: %v", err)
	}
	if fix.Lat != 37.5 {
		t.Errorf("fix = %v", fix)
	}
}

func TestSingleShot(t *testing.T) {
	p := New()
	req := p.Begin(time.Second)
	if err := p.Resolve(req.ID, Fix{Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	// The request is consumed; a second resolution has nowhere to go.
	if err := p.Resolve(req.ID, Fix{Lat: 3, Lng: 4}); err != ErrStale {
		t.Errorf("second Resolve = %v, want ErrStale", err)
	}
}

func TestWaitContextCancel(t *testing.T) {
	p := New()
	req := p.Begin(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if _, err := p.Wait(ctx, req); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestDefaultTimeout(t *testing.T) {
	p := New()
	req := p.Begin(0)
	remaining := time.Until(req.Deadline)
	if remaining < 7*time.Second || remaining > 9*time.Second {
		t.Errorf("default deadline %v away, want ~%v", remaining, Timeout)
	}
	p.Fail(req.ID, ReasonDenied)
}
