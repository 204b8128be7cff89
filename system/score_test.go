package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
)

// Test the survival trickle pays one point per interval
func TestScoreTrickle(t *testing.T) {
	ctx := newTestContext()
	sys := NewScoreSystem(ctx)

	for i := 0; i < 5; i++ {
		sys.Update(ctx.World, 300*time.Millisecond)
	}
	if ctx.Score != 1 {
		t.Errorf("Expected 1 point after 1.5s, got %d", ctx.Score)
	}

	sys.Update(ctx.World, 600*time.Millisecond)
	if ctx.Score != 2 {
		t.Errorf("Expected 2 points after 2.1s, got %d", ctx.Score)
	}
}

// Test a long stall pays every missed interval
func TestScoreCatchesUp(t *testing.T) {
	ctx := newTestContext()
	sys := NewScoreSystem(ctx)

	sys.Update(ctx.World, 3500*time.Millisecond)
	if ctx.Score != 3 {
		t.Errorf("Expected 3 points after 3.5s, got %d", ctx.Score)
	}
}

// Test bounties land without consuming the kill cues
func TestScoreBounty(t *testing.T) {
	ctx := newTestContext()
	sys := NewScoreSystem(ctx)

	ctx.Events.Push(event.EventKill, event.KillPayload{Entity: 9, Bounty: parameter.SpiderBounty})
	sys.Update(ctx.World, parameter.FrameInterval)

	if ctx.Score != parameter.SpiderBounty {
		t.Errorf("Expected the bounty scored, got %d", ctx.Score)
	}
	if kills := ctx.Events.Peek(event.EventKill); len(kills) != 1 {
		t.Errorf("Expected the kill cue left for the frontend, got %d", len(kills))
	}
}

// Test the tally freezes at game over while the fade clock runs
func TestScoreFreezesOnGameOver(t *testing.T) {
	ctx := newTestContext()
	sys := NewScoreSystem(ctx)

	ctx.Score = 50
	ctx.GameOver = true
	ctx.Events.Push(event.EventKill, event.KillPayload{Entity: 9, Bounty: 40})

	sys.Update(ctx.World, 2*time.Second)

	if ctx.Score != 50 {
		t.Errorf("Expected the score frozen at 50, got %d", ctx.Score)
	}
	if ctx.GameOverElapsed != 2*time.Second {
		t.Errorf("Expected 2s on the fade clock, got %v", ctx.GameOverElapsed)
	}
}
