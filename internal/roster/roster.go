// Package roster keeps the live set of participants signed up for the current game.
package roster

import (
	"errors"
	"iter"
	"strings"
)

// ErrNotRegistered is returned when an operation needs a participant that has not signed up.
var ErrNotRegistered = errors.New("roster: participant not registered")

// Identity describes the Telegram user behind an action.
type Identity struct {
	ID        int64
	FirstName string
	LastName  string
}

// DisplayName joins first and last name; it is empty when both are missing.
func (i Identity) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Participant is a single roster entry.
type Participant struct {
	ID   int64
	Name string
	Paid bool
}

// SignUpResult reports the outcome of SignUp.
type SignUpResult int

const (
	SignedUp SignUpResult = iota
	AlreadySignedUp
)

// CancelResult reports the outcome of CancelSignUp.
type CancelResult int

const (
	Cancelled CancelResult = iota
	NotSignedUp
)

// Roster is an insertion-ordered set of participants keyed by user ID.
// It is not safe for concurrent use; callers serialise access.
type Roster struct {
	order   []int64
	entries map[int64]*Participant
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{entries: make(map[int64]*Participant)}
}

// SignUp adds the identity unless it is already present.
func (r *Roster) SignUp(id Identity) SignUpResult {
	if _, ok := r.entries[id.ID]; ok {
		return AlreadySignedUp
	}
	r.entries[id.ID] = &Participant{ID: id.ID, Name: id.DisplayName()}
	r.order = append(r.order, id.ID)
	return SignedUp
}

// CancelSignUp removes the participant if present.
func (r *Roster) CancelSignUp(userID int64) CancelResult {
	if _, ok := r.entries[userID]; !ok {
		return NotSignedUp
	}
	delete(r.entries, userID)
	for i, id := range r.order {
		if id == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return Cancelled
}

// MarkPaid flags the participant as paid. The returned bool is true only when
// the flag flipped during this call.
func (r *Roster) MarkPaid(userID int64) (Participant, bool, error) {
	p, ok := r.entries[userID]
	if !ok {
		return Participant{}, false, ErrNotRegistered
	}
	if p.Paid {
		return *p, false, nil
	}
	p.Paid = true
	return *p, true, nil
}

// Get returns a copy of the participant entry.
func (r *Roster) Get(userID int64) (Participant, bool) {
	p, ok := r.entries[userID]
	if !ok {
		return Participant{}, false
	}
	return *p, true
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.order)
}

// All yields participants in sign-up order. The sequence can be ranged over any number of times.
func (r *Roster) All() iter.Seq[Participant] {
	return func(yield func(Participant) bool) {
		for _, id := range r.order {
			if !yield(*r.entries[id]) {
				return
			}
		}
	}
}

// Clear removes every participant.
func (r *Roster) Clear() {
	r.order = nil
	clear(r.entries)
}
