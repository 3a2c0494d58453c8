// Package actions is the input-binding service: it routes action events from
// the input system to whoever subscribed to them.
package actions

import (
	cfg "github.com/automoto/tiefling/config"
	"github.com/yohamta/donburi/features/math"
)

// Phase is the lifecycle point of an action an event reports. Phases are
// bit flags so a subscription can listen to several at once.
type Phase uint8

const (
	Started Phase = 1 << iota
	Performed
	Canceled
)

// AnyPhase matches every phase.
const AnyPhase = Started | Performed | Canceled

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	default:
		return "mixed"
	}
}

// Event is one action report. Vector carries the payload of vector actions
// (move), Active the held state of button actions.
type Event struct {
	Action cfg.ActionID
	Phase  Phase
	Vector math.Vec2
	Active bool
}

// Handler receives events for the action it subscribed to.
type Handler func(Event)

// Map holds the subscriptions for every action.
type Map struct {
	subs map[cfg.ActionID][]*Subscription
}

func NewMap() *Map {
	return &Map{subs: make(map[cfg.ActionID][]*Subscription)}
}

// Subscribe registers h for the given phases of action. The returned
// subscription must be released to stop delivery.
func (m *Map) Subscribe(action cfg.ActionID, phases Phase, h Handler) *Subscription {
	s := &Subscription{owner: m, action: action, phases: phases, handler: h}
	m.subs[action] = append(m.subs[action], s)
	return s
}

// Dispatch delivers ev synchronously, in subscription order, and returns the
// number of handlers that ran. Handlers may release subscriptions (their own
// or others) while the event is being delivered.
func (m *Map) Dispatch(ev Event) int {
	subs := m.subs[ev.Action]
	if len(subs) == 0 {
		return 0
	}
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)

	delivered := 0
	for _, s := range snapshot {
		if s.released || s.phases&ev.Phase == 0 {
			continue
		}
		s.handler(ev)
		delivered++
	}
	return delivered
}

// Count returns the number of live subscriptions for action.
func (m *Map) Count(action cfg.ActionID) int {
	return len(m.subs[action])
}

func (m *Map) remove(s *Subscription) {
	subs := m.subs[s.action]
	for i, other := range subs {
		if other == s {
			m.subs[s.action] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(m.subs[s.action]) == 0 {
		delete(m.subs, s.action)
	}
}

// Subscription is a registration handle returned by Map.Subscribe.
type Subscription struct {
	owner    *Map
	action   cfg.ActionID
	phases   Phase
	handler  Handler
	released bool
}

// Release stops delivery. It is safe to call more than once.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.owner.remove(s)
}

// Released reports whether Release has been called.
func (s *Subscription) Released() bool {
	return s == nil || s.released
}
