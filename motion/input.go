package motion

import "github.com/yohamta/donburi/features/math"

// pendingInput collects action events between two steps. Each action is
// last-write-wins, except crouch toggles which are counted so that an even
// number of releases cancels out.
type pendingInput struct {
	move    math.Vec2
	hasMove bool

	jump bool

	running    bool
	hasRunning bool

	crouchToggles int

	crouchHeld    bool
	hasCrouchHeld bool
}

func (p *pendingInput) setMove(v math.Vec2) {
	p.move = v
	p.hasMove = true
}

func (p *pendingInput) requestJump() {
	p.jump = true
}

func (p *pendingInput) setRunning(active bool) {
	p.running = active
	p.hasRunning = true
}

func (p *pendingInput) toggleCrouch() {
	p.crouchToggles++
}

func (p *pendingInput) setCrouchHeld(held bool) {
	p.crouchHeld = held
	p.hasCrouchHeld = true
}

// take returns the buffered input and clears the buffer.
func (p *pendingInput) take() pendingInput {
	snap := *p
	*p = pendingInput{}
	return snap
}
