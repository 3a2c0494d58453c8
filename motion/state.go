package motion

// GroundState is the contact state re-derived from the body every step.
type GroundState int

const (
	Airborne GroundState = iota
	Grounded
)

func (s GroundState) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// GroundTransition describes what changed between two ground states.
type GroundTransition int

const (
	TransitionNone GroundTransition = iota
	TransitionLanded
	TransitionLeftGround
)

func (t GroundTransition) String() string {
	switch t {
	case TransitionLanded:
		return "landed"
	case TransitionLeftGround:
		return "left_ground"
	default:
		return "none"
	}
}

// NextGroundState derives the new state from the ground probe.
func NextGroundState(prev GroundState, grounded bool) (GroundState, GroundTransition) {
	next := Airborne
	if grounded {
		next = Grounded
	}
	switch {
	case prev == Airborne && next == Grounded:
		return next, TransitionLanded
	case prev == Grounded && next == Airborne:
		return next, TransitionLeftGround
	default:
		return next, TransitionNone
	}
}
