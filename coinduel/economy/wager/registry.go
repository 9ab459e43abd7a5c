package wager

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/coinduelbot/coinduel/coinduel/game/rps"
)

// Challenge is an unaccepted bet proposal, keyed in the registry by the
// target player's user id.
type Challenge struct {
	Challenger string
	Stake      int64
	Choice     rps.Choice
	CreatedAt  time.Time
}

// Registry holds at most one outstanding challenge per target. It is pure
// storage: stake and solvency validation belong to the Settler.
//
// Challenges never expire; they live until accepted or replaced. A new
// challenge against the same target silently replaces the old one.
type Registry struct {
	challenges *xsync.MapOf[string, Challenge]
}

func NewRegistry() *Registry {
	return &Registry{challenges: xsync.NewMapOf[string, Challenge]()}
}

// Create stores a challenge for target, replacing any prior one.
func (r *Registry) Create(target string, ch Challenge) {
	r.challenges.Store(target, ch)
}

// Pending returns the outstanding challenge for target without consuming it.
func (r *Registry) Pending(target string) (Challenge, bool) {
	return r.challenges.Load(target)
}

// Consume atomically removes and returns the challenge for target. Of any
// number of concurrent calls for one target, exactly one gets the
// challenge; the rest report absent.
func (r *Registry) Consume(target string) (Challenge, bool) {
	return r.challenges.LoadAndDelete(target)
}

// Len reports how many challenges are outstanding.
func (r *Registry) Len() int {
	return r.challenges.Size()
}
