package scan

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

const testCooldown = 2 * time.Second

func TestSession_AcceptsFirstScan(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	assert.True(t, s.Accept("4601234567890"))
}

func TestSession_CooldownSequence(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	// t=0: first scan accepted.
	assert.True(t, s.Accept("A"), "first scan at t=0")

	// t=500ms: identical code inside the window rejected.
	clock.Advance(500 * time.Millisecond)
	assert.False(t, s.Accept("A"), "same code at t=500ms")

	// t=500ms: a different code is accepted even inside the window.
	assert.True(t, s.Accept("B"), "different code at t=500ms")
}

func TestSession_SameCodeAfterCooldown(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	assert.True(t, s.Accept("A"))

	clock.Advance(500 * time.Millisecond)
	assert.False(t, s.Accept("A"))

	// t=2.6s: cooldown has elapsed since the acceptance at t=0.
	clock.Advance(2100 * time.Millisecond)
	assert.True(t, s.Accept("A"), "same code after cooldown elapsed")
}

func TestSession_RapidFlood(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	accepted := 0
	for i := 0; i < 10; i++ {
		if s.Accept("A") {
			accepted++
		}
		clock.Advance(50 * time.Millisecond)
	}

	assert.Equal(t, 1, accepted, "a flood of identical events collapses to one acceptance")
}

func TestSession_ResetKeepsGuardMidCooldown(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	assert.True(t, s.Accept("A"))

	// Reset mid-cooldown must not let the same trigger through.
	clock.Advance(500 * time.Millisecond)
	s.Reset()
	clock.Advance(100 * time.Millisecond)
	assert.False(t, s.Accept("A"), "same code right after a mid-cooldown reset")

	// Once the cooldown has also elapsed past the reset, the code is accepted.
	clock.Advance(2 * time.Second)
	assert.True(t, s.Accept("A"))
}

func TestSession_UpdatesStateOnAcceptance(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := NewSession(clock, testCooldown)

	// Accepting B mid-window restarts the guard for B.
	assert.True(t, s.Accept("A"))
	clock.Advance(500 * time.Millisecond)
	assert.True(t, s.Accept("B"))

	clock.Advance(500 * time.Millisecond)
	assert.False(t, s.Accept("B"), "B is now the guarded code")
	assert.True(t, s.Accept("A"), "A differs from the last accepted code")
}
