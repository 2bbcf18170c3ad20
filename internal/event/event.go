// Package event enumerates the inbound updates the game reacts to.
package event

import (
	"fmt"

	"github.com/m3rciful/gamebot/internal/roster"
)

// Button is one of the inline buttons the bot renders.
type Button uint8

const (
	// admin menu
	NewGame Button = iota + 1
	ShowParticipants
	CancelGame
	HallReserved

	// draft preview
	Publish

	// public roster message
	SignUp
	CancelSignUp
	ConfirmPayment

	buttonEnd
)

var buttonKeys = [...]string{
	NewGame:          "new_game",
	ShowParticipants: "show_participants",
	CancelGame:       "cancel_game",
	HallReserved:     "hall_reserved",
	Publish:          "publish",
	SignUp:           "signup",
	CancelSignUp:     "cancel_signup",
	ConfirmPayment:   "confirm_payment",
}

// String returns the callback key carried by the button.
func (b Button) String() string {
	if b == 0 || b >= buttonEnd {
		return fmt.Sprintf("button(%d)", uint8(b))
	}
	return buttonKeys[b]
}

// AdminOnly reports whether the button belongs to the admin control panel.
func (b Button) AdminOnly() bool {
	switch b {
	case NewGame, ShowParticipants, CancelGame, HallReserved, Publish:
		return true
	}
	return false
}

// ParseButton maps a callback key back to its button.
func ParseButton(key string) (Button, bool) {
	for b := NewGame; b < buttonEnd; b++ {
		if buttonKeys[b] == key {
			return b, true
		}
	}
	return 0, false
}

// Buttons lists every known button.
func Buttons() []Button {
	out := make([]Button, 0, int(buttonEnd)-1)
	for b := NewGame; b < buttonEnd; b++ {
		out = append(out, b)
	}
	return out
}

// Event is an inbound update. The set of implementations is closed.
type Event interface {
	From() roster.Identity
	isEvent()
}

// Text is a plain text message sent to the bot.
type Text struct {
	Sender roster.Identity
	Body   string
}

// Press is an inline button press.
type Press struct {
	Sender     roster.Identity
	Button     Button
	CallbackID string
}

// Command is a slash command such as /start.
type Command struct {
	Sender roster.Identity
	Name   string
}

func (e Text) From() roster.Identity    { return e.Sender }
func (e Press) From() roster.Identity   { return e.Sender }
func (e Command) From() roster.Identity { return e.Sender }

func (Text) isEvent()    {}
func (Press) isEvent()   {}
func (Command) isEvent() {}
