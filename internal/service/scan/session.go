// Package scan implements the barcode resolution workflow: a per-session
// state machine that turns scanner events into catalogue lookups, with a
// cooldown guard against duplicate event floods.
package scan

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Session holds the cooldown state of one interactive scanning session.
// It is a pure function of (event, prior state) over the injected clock
// and is not safe for concurrent use; Workflow serializes access to it.
type Session struct {
	clock    clockwork.Clock
	cooldown time.Duration

	lastAcceptedAt   time.Time
	lastAcceptedCode string
	resetAt          time.Time
}

// NewSession creates a session with the given cooldown interval.
func NewSession(clock clockwork.Clock, cooldown time.Duration) *Session {
	return &Session{clock: clock, cooldown: cooldown}
}

// Accept reports whether a candidate code passes the cooldown guard and, on
// acceptance, records it immediately so a second physical trigger arriving
// during the lookup is also rejected.
//
// A code is accepted iff the cooldown has elapsed since the last acceptance
// or the code differs from the last accepted one.
func (s *Session) Accept(code string) bool {
	now := s.clock.Now()

	// A reset keeps the last accepted code guarding for one more cooldown
	// interval, then it is dropped lazily on the next event.
	if !s.resetAt.IsZero() && now.Sub(s.resetAt) >= s.cooldown {
		s.lastAcceptedCode = ""
		s.resetAt = time.Time{}
	}

	if s.lastAcceptedAt.IsZero() ||
		now.Sub(s.lastAcceptedAt) >= s.cooldown ||
		code != s.lastAcceptedCode {
		s.lastAcceptedAt = now
		s.lastAcceptedCode = code
		return true
	}

	return false
}

// Reset re-arms the session. The last accepted code is deliberately kept so
// a reset triggered mid-cooldown does not let the same physical trigger
// through; it stops guarding one cooldown interval after the reset.
func (s *Session) Reset() {
	s.resetAt = s.clock.Now()
}
