package actions

import (
	cfg "github.com/automoto/tiefling/config"
	"github.com/yohamta/donburi/features/math"
)

// ButtonEvents derives the events of a button action from its pressed state
// on two consecutive frames. A press reports Started then Performed in the
// same frame; a release reports Canceled.
func ButtonEvents(action cfg.ActionID, prev, cur bool) []Event {
	switch {
	case cur && !prev:
		return []Event{
			{Action: action, Phase: Started, Active: true},
			{Action: action, Phase: Performed, Active: true},
		}
	case !cur && prev:
		return []Event{{Action: action, Phase: Canceled}}
	}
	return nil
}

// AxisEvents derives the events of a vector action. Every change while
// actuated is a Performed; returning to zero is a Canceled.
func AxisEvents(action cfg.ActionID, prev, cur math.Vec2) []Event {
	if prev == cur {
		return nil
	}

	zero := math.Vec2{}
	switch {
	case cur == zero:
		return []Event{{Action: action, Phase: Canceled}}
	case prev == zero:
		return []Event{
			{Action: action, Phase: Started, Vector: cur, Active: true},
			{Action: action, Phase: Performed, Vector: cur, Active: true},
		}
	}
	return []Event{{Action: action, Phase: Performed, Vector: cur, Active: true}}
}
