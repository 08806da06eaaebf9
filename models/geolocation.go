package models

import (
	"errors"
	"sync"
	"time"
)

// ProbeState is the lifecycle of a geolocation request:
// idle → requesting → resolved, or back to idle after a failure.
type ProbeState string

const (
	ProbeIdle       ProbeState = "idle"
	ProbeRequesting ProbeState = "requesting"
	ProbeResolved   ProbeState = "resolved"
)

// GeoFailure is the reason a geolocation request did not produce a
// position. The set is closed; anything unrecognized maps to GeoUnknown.
type GeoFailure string

const (
	GeoUnsupported GeoFailure = "unsupported"
	GeoDenied      GeoFailure = "denied"
	GeoUnavailable GeoFailure = "unavailable"
	GeoTimeout     GeoFailure = "timeout"
	GeoUnknown     GeoFailure = "unknown"
)

// ValidGeoFailure reports whether reason is one of the known values.
func ValidGeoFailure(reason GeoFailure) bool {
	switch reason {
	case GeoUnsupported, GeoDenied, GeoUnavailable, GeoTimeout, GeoUnknown:
		return true
	default:
		return false
	}
}

var ErrRequestInFlight = errors.New("a location request is already in flight")

// DefaultProbeTimeout bounds how long a request may stay unanswered
// before the probe reports a timeout on its own.
const DefaultProbeTimeout = 15 * time.Second

// LocationProbe tracks one session's attempt to capture the device
// position. At most one request is in flight at a time; completions
// carry the generation token handed out by Begin, and a completion
// whose token no longer matches is dropped so a stale answer can never
// overwrite newer state. Safe for concurrent access.
type LocationProbe struct {
	mu          sync.Mutex
	state       ProbeState
	generation  uint64
	coords      *Coordinates
	lastFailure GeoFailure
	timer       *time.Timer
}

func NewLocationProbe() *LocationProbe {
	return &LocationProbe{state: ProbeIdle}
}

// Begin starts a new location request and returns its generation token.
// Fails with ErrRequestInFlight while a previous request is unanswered.
// If the request is not completed within timeout the probe fails it
// with GeoTimeout by itself.
func (p *LocationProbe) Begin(timeout time.Duration) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == ProbeRequesting {
		return 0, ErrRequestInFlight
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	p.generation++
	p.state = ProbeRequesting
	p.lastFailure = ""

	gen := p.generation
	p.timer = time.AfterFunc(timeout, func() {
		p.Fail(gen, GeoTimeout)
	})
	return gen, nil
}

// Resolve applies a successful position fix for the request identified
// by gen. Returns false if the request was superseded or already
// completed, in which case the fix is discarded.
func (p *LocationProbe) Resolve(gen uint64, coords Coordinates) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != ProbeRequesting || gen != p.generation {
		return false
	}
	p.stopTimer()
	p.state = ProbeResolved
	p.coords = &coords
	return true
}

// Fail records a failure reason for the request identified by gen and
// returns the probe to idle. Stale tokens are dropped, same as Resolve.
func (p *LocationProbe) Fail(gen uint64, reason GeoFailure) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != ProbeRequesting || gen != p.generation {
		return false
	}
	if !ValidGeoFailure(reason) {
		reason = GeoUnknown
	}
	p.stopTimer()
	p.state = ProbeIdle
	p.lastFailure = reason
	return true
}

// Discard drops any held coordinate and invalidates an in-flight
// request, returning the probe to idle. Called on mode switches away
// from delivery, cart clears, and after checkout.
func (p *LocationProbe) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopTimer()
	p.generation++
	p.state = ProbeIdle
	p.coords = nil
	p.lastFailure = ""
}

// Coordinates returns the captured position, or nil if none is held.
func (p *LocationProbe) Coordinates() *Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.coords == nil {
		return nil
	}
	c := *p.coords
	return &c
}

// State returns the current lifecycle state.
func (p *LocationProbe) State() ProbeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastFailure returns the reason the most recent request failed, or ""
// if it did not fail or a new request has started since.
func (p *LocationProbe) LastFailure() GeoFailure {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFailure
}

// caller holds p.mu
func (p *LocationProbe) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
