package transport

import (
	"context"
	"strings"

	tghelpers "github.com/m3rciful/gamebot/core/telegram/helpers"
	"github.com/m3rciful/gamebot/internal/event"
	"github.com/m3rciful/gamebot/internal/roster"

	tele "gopkg.in/telebot.v4"
)

// Coordinator is the game side of the inbound flow.
type Coordinator interface {
	Handle(ctx context.Context, ev event.Event) error
	AwaitingDraftFrom(userID int64) bool
}

// Inbound turns Telebot updates into game events.
type Inbound struct {
	game Coordinator
}

// NewInbound returns handlers feeding game.
func NewInbound(game Coordinator) *Inbound {
	return &Inbound{game: game}
}

// Identity maps a Telegram user to a roster identity.
func Identity(u *tele.User) roster.Identity {
	if u == nil {
		return roster.Identity{}
	}
	return roster.Identity{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// Press returns the callback handler for button b.
func (in *Inbound) Press(b event.Button) tele.HandlerFunc {
	return func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			return nil
		}
		return in.game.Handle(tghelpers.BuildContext(c), event.Press{
			Sender:     Identity(c.Sender()),
			Button:     b,
			CallbackID: cb.ID,
		})
	}
}

// Command returns the handler for a slash command such as /start.
func (in *Inbound) Command(name string) tele.HandlerFunc {
	name = strings.TrimPrefix(name, "/")
	return func(c tele.Context) error {
		return in.game.Handle(tghelpers.BuildContext(c), event.Command{
			Sender: Identity(c.Sender()),
			Name:   name,
		})
	}
}

// InProgress reports whether the user is expected to send the announcement text.
func (in *Inbound) InProgress(userID int64) bool {
	return in.game.AwaitingDraftFrom(userID)
}

// ManagerHandler forwards free text to the game.
func (in *Inbound) ManagerHandler(c tele.Context) error {
	return in.game.Handle(tghelpers.BuildContext(c), event.Text{
		Sender: Identity(c.Sender()),
		Body:   c.Text(),
	})
}
