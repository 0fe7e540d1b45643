package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"voltflow-backend/pkg/geo"

	"github.com/looplab/fsm"
)

// Authorization states.
const (
	StateNotDetermined       = "not_determined"
	StateDenied              = "denied"
	StateAuthorizedIdle      = "authorized_idle"
	StateAuthorizedStreaming = "authorized_streaming"
)

// Permission events.
const (
	EventGrant   = "grant"
	EventDeny    = "deny"
	EventRequest = "request"
	EventStop    = "stop"
	EventRevoke  = "revoke"
)

var (
	// ErrPermissionDenied is returned while the user has denied location
	// access. The only way out is a settings change reported via Grant.
	ErrPermissionDenied = errors.New("location: permission denied")
	// ErrDecisionPending is returned by RequestLocation when the
	// permission prompt has been raised but not yet answered.
	ErrDecisionPending = errors.New("location: permission decision pending")
	// ErrNotStreaming is returned by Report outside the streaming state.
	ErrNotStreaming = errors.New("location: not streaming")
)

// DefaultDistanceFilterM is how far the device must move before a new
// coordinate is published to subscribers.
const DefaultDistanceFilterM = 50.0

// Provider tracks location authorization and publishes movement updates.
// It starts in not_determined and holds no coordinate until the first
// report arrives in the streaming state.
type Provider struct {
	mu              sync.Mutex
	fsm             *fsm.FSM
	distanceFilterM float64
	last            geo.Coordinate
	hasLast         bool
	subscribers     []chan geo.Coordinate
}

// NewProvider creates a provider with the given movement threshold in
// meters; zero or negative falls back to the 50 m default.
func NewProvider(distanceFilterM float64) *Provider {
	if distanceFilterM <= 0 {
		distanceFilterM = DefaultDistanceFilterM
	}

	p := &Provider{distanceFilterM: distanceFilterM}
	p.fsm = fsm.NewFSM(
		StateNotDetermined,
		fsm.Events{
			{Name: EventGrant, Src: []string{StateNotDetermined, StateDenied}, Dst: StateAuthorizedStreaming},
			{Name: EventDeny, Src: []string{StateNotDetermined}, Dst: StateDenied},
			{Name: EventRequest, Src: []string{StateAuthorizedIdle}, Dst: StateAuthorizedStreaming},
			{Name: EventStop, Src: []string{StateAuthorizedStreaming}, Dst: StateAuthorizedIdle},
			{Name: EventRevoke, Src: []string{StateAuthorizedIdle, StateAuthorizedStreaming}, Dst: StateDenied},
		},
		fsm.Callbacks{},
	)
	return p
}

// Status returns the current authorization state.
func (p *Provider) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fsm.Current()
}

// RequestLocation asks for location updates. Calling it while already
// streaming is a no-op and never re-prompts the user.
func (p *Provider) RequestLocation() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.fsm.Current() {
	case StateAuthorizedStreaming:
		return nil
	case StateAuthorizedIdle:
		return p.trigger(EventRequest)
	case StateDenied:
		return ErrPermissionDenied
	default:
		// Prompt raised; the decision arrives via Grant or Deny.
		return ErrDecisionPending
	}
}

// Grant records that the user (or a settings change, when denied) allowed
// location access. Streaming starts immediately.
func (p *Provider) Grant() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trigger(EventGrant)
}

// Deny records that the user refused the permission prompt.
func (p *Provider) Deny() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trigger(EventDeny)
}

// Revoke records an external settings change removing access.
func (p *Provider) Revoke() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.trigger(EventRevoke); err != nil {
		return err
	}
	p.hasLast = false
	return nil
}

// Stop pauses streaming while keeping authorization.
func (p *Provider) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trigger(EventStop)
}

func (p *Provider) trigger(event string) error {
	if err := p.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("location: %s: %w", event, err)
	}
	return nil
}

// Report feeds a platform-reported coordinate into the provider. It
// returns true when the coordinate was published to subscribers, false
// when it was discarded for being within the distance filter.
func (p *Provider) Report(coord geo.Coordinate) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fsm.Current() != StateAuthorizedStreaming {
		return false, ErrNotStreaming
	}

	if p.hasLast && geo.Distance(p.last, coord) < p.distanceFilterM {
		return false, nil
	}

	p.last = coord
	p.hasLast = true
	for _, ch := range p.subscribers {
		select {
		case ch <- coord:
		default:
			// Subscriber lagging: replace the stale update, latest wins.
			select {
			case <-ch:
			default:
			}
			ch <- coord
		}
	}
	return true, nil
}

// Current returns the last published coordinate, if any.
func (p *Provider) Current() (geo.Coordinate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.hasLast
}

// Subscribe registers for coordinate updates. The channel holds one
// pending update; a slow consumer only ever sees the latest coordinate.
func (p *Provider) Subscribe() <-chan geo.Coordinate {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan geo.Coordinate, 1)
	p.subscribers = append(p.subscribers, ch)
	return ch
}
