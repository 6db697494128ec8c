package scan

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// State is the observable state of a scanning workflow.
type State string

const (
	StateIdle             State = "idle"
	StateResolving        State = "resolving"
	StateFound            State = "found"
	StateNotFound         State = "not_found"
	StateError            State = "error"
	StatePermissionDenied State = "permission_denied"
)

// Event is delivered to subscribers on every state transition. Exactly one
// payload field is set, depending on State: Medicine for Found, Code for
// Resolving and NotFound, Err for Error.
type Event struct {
	State    State
	Code     string
	Medicine *domain.Medicine
	Err      error
}

// ErrClosed is returned by HandleScan after Close.
var ErrClosed = errors.New("scan workflow closed")

type lookupService interface {
	LookupByCode(ctx context.Context, code string) (*domain.Medicine, error)
}

// PermissionChecker reports whether the scanning hardware (e.g., camera) is
// available to this session. Queried once at construction and again on Retry.
type PermissionChecker interface {
	ScanningAllowed(ctx context.Context) bool
}

// Workflow drives one interactive scanning session. Scanner events go in via
// HandleScan; outcomes come out as Events. Cooldown-rejected events are
// dropped silently, with no transition.
//
// Found, NotFound and Error leave the workflow armed for the next scan;
// PermissionDenied is terminal until Retry succeeds.
type Workflow struct {
	lookup  lookupService
	perm    PermissionChecker
	session *Session
	log     *slog.Logger

	mu          sync.Mutex
	state       State
	generation  uint64
	cancel      context.CancelFunc
	closed      bool
	subscribers []func(Event)
}

// NewWorkflow creates a workflow for one session. The hardware capability is
// queried immediately: if unavailable, the workflow starts in
// PermissionDenied and never attempts a scan until Retry succeeds.
func NewWorkflow(ctx context.Context, log *slog.Logger, lookup lookupService, perm PermissionChecker, session *Session) *Workflow {
	w := &Workflow{
		lookup:  lookup,
		perm:    perm,
		session: session,
		log:     log.With("service", "scan"),
		state:   StateIdle,
	}

	if !perm.ScanningAllowed(ctx) {
		w.state = StatePermissionDenied
	}

	return w
}

// OnTransition registers a subscriber invoked on every state transition.
// Subscribers are called sequentially, outside the workflow lock.
func (w *Workflow) OnTransition(fn func(Event)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// HandleScan feeds one scanner event into the workflow. Events arriving
// while another lookup is resolving, while permission is denied, or within
// the cooldown window of an identical accepted code are dropped silently.
// The lookup runs asynchronously; its outcome is delivered via Events.
func (w *Workflow) HandleScan(ctx context.Context, code string) error {
	normalized := domain.NormalizeBarcode(code)
	if normalized == "" {
		return nil
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.state == StatePermissionDenied || w.state == StateResolving {
		w.mu.Unlock()
		return nil
	}
	if !w.session.Accept(normalized) {
		w.mu.Unlock()
		w.log.DebugContext(ctx, "scan rejected by cooldown", slog.String("code", normalized))
		return nil
	}

	w.state = StateResolving
	gen := w.generation
	lookupCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.notify(Event{State: StateResolving, Code: normalized})

	go func() {
		med, err := w.lookup.LookupByCode(lookupCtx, normalized)
		w.finishLookup(gen, normalized, med, err)
	}()

	return nil
}

// finishLookup applies a lookup outcome, unless the session was closed or
// reset while the lookup was in flight.
func (w *Workflow) finishLookup(gen uint64, code string, med *domain.Medicine, err error) {
	w.mu.Lock()
	if w.closed || gen != w.generation {
		w.mu.Unlock()
		return
	}
	w.cancel = nil

	var ev Event
	switch {
	case err == nil:
		w.state = StateFound
		ev = Event{State: StateFound, Medicine: med}
	case errors.Is(err, domain.ErrNotFound):
		w.state = StateNotFound
		ev = Event{State: StateNotFound, Code: code}
	default:
		w.state = StateError
		ev = Event{State: StateError, Err: err}
	}
	w.mu.Unlock()

	w.notify(ev)
}

// Reset clears Resolving/Found/NotFound/Error back to Idle, cancelling any
// in-flight lookup. The cooldown guard survives the reset (see Session.Reset).
// A PermissionDenied workflow is left alone; only Retry leaves that state.
func (w *Workflow) Reset() {
	w.mu.Lock()
	if w.closed || w.state == StatePermissionDenied || w.state == StateIdle {
		w.mu.Unlock()
		return
	}

	w.generation++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.session.Reset()
	w.state = StateIdle
	w.mu.Unlock()

	w.notify(Event{State: StateIdle})
}

// Retry re-queries the hardware capability from PermissionDenied. On success
// the workflow enters Idle; otherwise it stays denied.
func (w *Workflow) Retry(ctx context.Context) {
	w.mu.Lock()
	if w.closed || w.state != StatePermissionDenied {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	if !w.perm.ScanningAllowed(ctx) {
		return
	}

	w.mu.Lock()
	if w.closed || w.state != StatePermissionDenied {
		w.mu.Unlock()
		return
	}
	w.state = StateIdle
	w.mu.Unlock()

	w.notify(Event{State: StateIdle})
}

// Close tears the session down: any in-flight lookup is cancelled and its
// late response discarded, and no further events are delivered.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.generation++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Workflow) notify(ev Event) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	subs := make([]func(Event), len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
