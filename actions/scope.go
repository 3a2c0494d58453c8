package actions

import cfg "github.com/automoto/tiefling/config"

// Scope owns a set of subscriptions taken together and released together.
// The zero value is ready to use.
type Scope struct {
	subs []*Subscription
}

// Subscribe subscribes on m and keeps the handle in the scope.
func (sc *Scope) Subscribe(m *Map, action cfg.ActionID, phases Phase, h Handler) *Subscription {
	s := m.Subscribe(action, phases, h)
	sc.subs = append(sc.subs, s)
	return s
}

// Release releases every subscription held by the scope and empties it.
func (sc *Scope) Release() {
	for _, s := range sc.subs {
		s.Release()
	}
	sc.subs = sc.subs[:0]
}

// Len returns the number of subscriptions held.
func (sc *Scope) Len() int {
	return len(sc.subs)
}
