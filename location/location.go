package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// The provider wraps the device positioning capability with a single-shot,
// bounded-wait, no-retry policy. The browser resolves geolocation on its side
// and posts the result back; the provider correlates that result to the
// request that asked for it and rejects anything stale.

// Timeout is the bounded wait before an unresolved request fails.
const Timeout = 8 * time.Second

// Failure reasons reported by the positioning capability.
const (
	ReasonUnsupported = "unsupported"
	ReasonDenied      = "denied"
	ReasonTimeout     = "timeout"
	ReasonUnknown     = "unknown"
)

// Error is a typed positioning failure.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "location: " + e.Reason
}

// Fix is a resolved device position.
type Fix struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var (
	// ErrStale is returned when a result arrives for a superseded request.
	// The late result is discarded harmlessly.
	ErrStale = errors.New("location: stale request")
	// ErrBusy is returned when a waiter is already attached to the pending
	// request; at most one wait is meaningful at a time.
	ErrBusy = errors.New("location: request already being waited on")
)

// Result is the tagged outcome of a request: a fix or a typed failure.
type Result struct {
	Fix Fix
	Err error
}

// Request is a single-shot position query with an explicit deadline.
type Request struct {
	ID       string
	Deadline time.Time
	done     chan Result
	once     sync.Once
}

func (r *Request) resolve(res Result) {
	r.once.Do(func() {
		r.done <- res
		close(r.done)
	})
}

// Provider issues and correlates single-shot position requests. A new request
// supersedes interest in any prior unresolved one.
type Provider struct {
	mu      sync.Mutex
	pending *Request
	waiting *semaphore.Weighted
}

func New() *Provider {
	return &Provider{waiting: semaphore.NewWeighted(1)}
}

// Begin issues a new request. Any prior unresolved request is superseded: its
// late result will be rejected as stale. Zero timeout uses the default.
func (p *Provider) Begin(timeout time.Duration) *Request {
	if timeout <= 0 {
		timeout = Timeout
	}
	req := &Request{
		ID:       uuid.New().String(),
		Deadline: time.Now().Add(timeout),
		done:     make(chan Result, 1),
	}
	p.mu.Lock()
	prev := p.pending
	p.pending = req
	p.mu.Unlock()

	if prev != nil {
		prev.resolve(Result{Err: ErrStale})
	}
	return req
}

// current returns the pending request if id matches it, detaching it so the
// request completes exactly once.
func (p *Provider) take(id string) *Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil || p.pending.ID != id {
		return nil
	}
	req := p.pending
	p.pending = nil
	return req
}

// Resolve completes the pending request with a fix. A mismatched id means the
// request was superseded; past-deadline fixes lose to the timeout.
func (p *Provider) Resolve(id string, fix Fix) error {
	req := p.take(id)
	if req == nil {
		return ErrStale
	}
	if time.Now().After(req.Deadline) {
		req.resolve(Result{Err: &Error{Reason: ReasonTimeout}})
		return ErrStale
	}
	req.resolve(Result{Fix: fix})
	return nil
}

// Fail completes the pending request with a typed failure reason.
func (p *Provider) Fail(id, reason string) error {
	req := p.take(id)
	if req == nil {
		return ErrStale
	}
	switch reason {
	case ReasonUnsupported, ReasonDenied, ReasonTimeout:
	default:
		reason = ReasonUnknown
	}
	req.resolve(Result{Err: &Error{Reason: reason}})
	return nil
}

// Wait blocks until the request completes, its deadline passes, or ctx is
// cancelled. Only one waiter may be attached at a time.
func (p *Provider) Wait(ctx context.Context, req *Request) (Fix, error) {
	if !p.waiting.TryAcquire(1) {
		return Fix{}, ErrBusy
	}
	defer p.waiting.Release(1)

	timer := time.NewTimer(time.Until(req.Deadline))
	defer timer.Stop()

	select {
	case res, ok := <-req.done:
		if !ok {
			return Fix{}, ErrStale
		}
		return res.Fix, res.Err
	case <-timer.C:
		// Detach so a later resolution is rejected as stale.
		p.take(req.ID)
		req.resolve(Result{Err: &Error{Reason: ReasonTimeout}})
		res := <-req.done
		return res.Fix, res.Err
	case <-ctx.Done():
		return Fix{}, ctx.Err()
	}
}
