// Package announcement tracks the authoring and publication state of the single game announcement.
package announcement

import (
	"errors"
	"fmt"

	"github.com/m3rciful/gamebot/internal/gateway"
)

// ErrStateConflict is returned when a transition is not allowed from the current state.
var ErrStateConflict = errors.New("announcement: state conflict")

// State is the lifecycle step of the announcement.
type State int

const (
	Idle State = iota
	AwaitingDraftText
	DraftReady
	Published
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingDraftText:
		return "awaiting_draft_text"
	case DraftReady:
		return "draft_ready"
	case Published:
		return "published"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session holds the draft and the live announcement.
// The zero value is an idle session.
type Session struct {
	draft         string
	hasDraft      bool
	awaitingDraft bool

	publishedText string
	handle        gateway.MessageHandle
	reserved      bool
}

// New returns an idle session.
func New() *Session {
	return &Session{}
}

// State derives the lifecycle step from the stored fields.
func (s *Session) State() State {
	switch {
	case !s.handle.IsZero():
		return Published
	case s.awaitingDraft:
		return AwaitingDraftText
	case s.hasDraft:
		return DraftReady
	}
	return Idle
}

// BeginDraft starts waiting for the announcement text. Any previous unpublished draft is dropped.
func (s *Session) BeginDraft() error {
	if s.State() == Published {
		return fmt.Errorf("%w: announcement already published", ErrStateConflict)
	}
	s.draft, s.hasDraft = "", false
	s.awaitingDraft = true
	return nil
}

// CaptureDraft stores text verbatim as the draft.
func (s *Session) CaptureDraft(text string) error {
	if s.State() != AwaitingDraftText {
		return fmt.Errorf("%w: not waiting for draft text", ErrStateConflict)
	}
	s.draft, s.hasDraft = text, true
	s.awaitingDraft = false
	return nil
}

// Draft returns the captured draft text.
func (s *Session) Draft() (string, bool) {
	return s.draft, s.hasDraft
}

// Publish records the group message carrying the draft.
func (s *Session) Publish(h gateway.MessageHandle) error {
	switch s.State() {
	case Published:
		return fmt.Errorf("%w: announcement already published", ErrStateConflict)
	case DraftReady:
	default:
		return fmt.Errorf("%w: no draft to publish", ErrStateConflict)
	}
	if h.IsZero() {
		return errors.New("announcement: empty message handle")
	}
	s.publishedText = s.draft
	s.handle = h
	s.reserved = false
	s.draft, s.hasDraft = "", false
	return nil
}

// Republish moves the live announcement to the hall-reserved message, keeping its text.
func (s *Session) Republish(h gateway.MessageHandle) error {
	if s.State() != Published {
		return fmt.Errorf("%w: nothing published", ErrStateConflict)
	}
	if h.IsZero() {
		return errors.New("announcement: empty message handle")
	}
	s.handle = h
	s.reserved = true
	return nil
}

// Reserved reports whether the live message is the hall-reserved re-announcement.
func (s *Session) Reserved() bool {
	return s.reserved
}

// Cancel resets the session to idle.
func (s *Session) Cancel() error {
	if s.State() != Published {
		return fmt.Errorf("%w: nothing published", ErrStateConflict)
	}
	*s = Session{}
	return nil
}

// Live returns the published text and its message handle.
func (s *Session) Live() (string, gateway.MessageHandle, bool) {
	if s.handle.IsZero() {
		return "", gateway.MessageHandle{}, false
	}
	return s.publishedText, s.handle, true
}
