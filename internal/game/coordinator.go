// Package game routes inbound events to roster and announcement transitions
// and keeps the group message in sync with them.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/m3rciful/gamebot/core/logger"
	"github.com/m3rciful/gamebot/internal/access"
	"github.com/m3rciful/gamebot/internal/announcement"
	"github.com/m3rciful/gamebot/internal/event"
	"github.com/m3rciful/gamebot/internal/gateway"
	"github.com/m3rciful/gamebot/internal/render"
	"github.com/m3rciful/gamebot/internal/roster"
)

const component = "game"

// Callback answers shown to the actor.
const (
	AnswerSignedUp         = "✅ You signed up!"
	AnswerAlreadySignedUp  = "❌ You are already signed up!"
	AnswerSignUpCancelled  = "✅ Sign-up cancelled."
	AnswerNotSignedUp      = "❌ You are not signed up!"
	AnswerPaymentNoted     = "✅ Payment noted. Thanks!"
	AnswerNotRegistered    = "You are not signed up."
	AnswerGameLive         = "⚠️ A game is already live. Cancel it first."
	AnswerNoActiveGame     = "⚠️ No active game."
	AnswerNoDraft          = "⚠️ Nothing to publish. Start a new game first."
	AnswerGroupUnreachable = "⚠️ Could not post to the group. Nothing was changed."
	AnswerGameCancelled    = "🚫 Game cancelled."
	AnswerHallReserved     = "✅ Hall reserved announcement sent."
	AnswerAwaitingDraft    = "✍️ Send the announcement text."
	AnswerPublished        = "✅ Published."
	AnswerListSent         = "📋 List sent."
	AnswerDraftMarkup      = "⚠️ Telegram could not parse the formatting. Press New game and send the text again."
)

// Coordinator owns the process-wide roster and announcement session.
// Handle serialises events, so at most one transition runs at a time.
type Coordinator struct {
	mu      sync.Mutex
	gate    *access.Gate
	gw      gateway.Gateway
	group   gateway.ChatID
	roster  *roster.Roster
	session *announcement.Session
}

// New returns a coordinator with an empty roster and an idle session.
func New(gate *access.Gate, gw gateway.Gateway, group gateway.ChatID) *Coordinator {
	return &Coordinator{
		gate:    gate,
		gw:      gw,
		group:   group,
		roster:  roster.New(),
		session: announcement.New(),
	}
}

// AwaitingDraftFrom reports whether a text from userID would be taken as the draft.
func (c *Coordinator) AwaitingDraftFrom(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State() == announcement.AwaitingDraftText && c.gate.IsPrivileged(userID)
}

// Handle applies one inbound event. It returns an error for unsupported events
// and for a failed callback answer; every other delivery failure is logged.
func (c *Coordinator) Handle(ctx context.Context, ev event.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case event.Text:
		c.onText(ctx, e)
		return nil
	case event.Command:
		c.onCommand(ctx, e)
		return nil
	case event.Press:
		return c.onPress(ctx, e)
	default:
		return fmt.Errorf("game: unsupported event %T", ev)
	}
}

func (c *Coordinator) onText(ctx context.Context, e event.Text) {
	if c.session.State() != announcement.AwaitingDraftText || !c.gate.IsPrivileged(e.Sender.ID) {
		return
	}
	if strings.HasPrefix(e.Body, "/") {
		return
	}
	if err := c.session.CaptureDraft(e.Body); err != nil {
		logger.Warn(ctx, component, "draft.capture_failed", slog.String("err", err.Error()))
		return
	}
	logger.Info(ctx, component, "draft.captured", slog.String("state", c.session.State().String()))
	preview := render.DraftPreview(e.Body)
	c.send(ctx, "draft.preview", gateway.ChatID(e.Sender.ID), preview.Text, preview.Options(false))
}

func (c *Coordinator) onCommand(ctx context.Context, e event.Command) {
	if e.Name != "start" || !c.gate.IsPrivileged(e.Sender.ID) {
		return
	}
	menu := render.AdminMenu()
	c.send(ctx, "admin.menu", gateway.ChatID(e.Sender.ID), menu.Text, menu.Options(false))
}

func (c *Coordinator) onPress(ctx context.Context, e event.Press) error {
	privileged := c.gate.IsPrivileged(e.Sender.ID)

	var ans gateway.Answer
	switch e.Button {
	case event.NewGame:
		ans = c.newGame(ctx, e, privileged)
	case event.ShowParticipants:
		if privileged {
			c.send(ctx, "participants.report", gateway.ChatID(e.Sender.ID), render.ParticipantsReport(c.roster), gateway.SendOptions{})
			ans = gateway.Answer{Text: AnswerListSent}
		}
	case event.CancelGame:
		if privileged {
			ans = c.cancelGame(ctx)
		}
	case event.HallReserved:
		if privileged {
			ans = c.hallReserved(ctx)
		}
	case event.Publish:
		ans = c.publish(ctx, e, privileged)
	case event.SignUp:
		ans = c.signUp(ctx, e)
	case event.CancelSignUp:
		ans = c.cancelSignUp(ctx, e)
	case event.ConfirmPayment:
		ans = c.confirmPayment(ctx, e)
	default:
		return fmt.Errorf("game: unknown button %s", e.Button)
	}
	if e.Button.AdminOnly() && !privileged && ans == (gateway.Answer{}) {
		logger.Debug(ctx, component, "access.denied", slog.String("button", e.Button.String()))
	}
	return c.answer(ctx, e, ans)
}

func (c *Coordinator) newGame(ctx context.Context, e event.Press, privileged bool) gateway.Answer {
	if c.session.State() == announcement.Published {
		return alert(AnswerGameLive)
	}
	if !privileged {
		return gateway.Answer{}
	}
	if err := c.session.BeginDraft(); err != nil {
		return alert(AnswerGameLive)
	}
	logger.Info(ctx, component, "draft.begin", slog.String("state", c.session.State().String()))
	c.send(ctx, "draft.prompt", gateway.ChatID(e.Sender.ID), render.DraftPrompt(), gateway.SendOptions{})
	return gateway.Answer{Text: AnswerAwaitingDraft}
}

func (c *Coordinator) publish(ctx context.Context, e event.Press, privileged bool) gateway.Answer {
	if c.session.State() == announcement.Published {
		return alert(AnswerGameLive)
	}
	if !privileged {
		return gateway.Answer{}
	}
	draft, ok := c.session.Draft()
	if !ok || c.session.State() != announcement.DraftReady {
		return alert(AnswerNoDraft)
	}

	c.roster.Clear()
	content := render.Announcement(draft, c.roster)
	h, err := c.gw.SendMessage(ctx, c.group, content.Text, content.Options(true))
	if err != nil {
		c.logDelivery(ctx, "announcement.publish", c.group, err)
		if errors.Is(err, gateway.ErrMarkup) {
			return alert(AnswerDraftMarkup)
		}
		return alert(AnswerGroupUnreachable)
	}
	if err := c.session.Publish(h); err != nil {
		logger.Error(ctx, component, "announcement.publish", slog.String("err", err.Error()))
		return alert(AnswerGroupUnreachable)
	}
	logger.Info(ctx, component, "announcement.published",
		slog.Int("message_id", h.MessageID),
		slog.String("state", c.session.State().String()),
	)
	c.send(ctx, "announcement.notice", gateway.ChatID(e.Sender.ID), render.PublishedNotice(), gateway.SendOptions{})
	return gateway.Answer{Text: AnswerPublished}
}

// cancelGame posts the notice before touching state. If the group cannot be
// reached the game stays live, so the old message is never orphaned.
func (c *Coordinator) cancelGame(ctx context.Context) gateway.Answer {
	if c.session.State() != announcement.Published {
		return alert(AnswerNoActiveGame)
	}
	if _, err := c.gw.SendMessage(ctx, c.group, render.CancelNotice(), gateway.SendOptions{}); err != nil {
		c.logDelivery(ctx, "game.cancel", c.group, err)
		return alert(AnswerGroupUnreachable)
	}
	c.roster.Clear()
	if err := c.session.Cancel(); err != nil {
		logger.Error(ctx, component, "game.cancel", slog.String("err", err.Error()))
	}
	logger.Info(ctx, component, "game.cancelled", slog.String("state", c.session.State().String()))
	return gateway.Answer{Text: AnswerGameCancelled}
}

// hallReserved re-announces the live game in a new message. The roster is kept.
func (c *Coordinator) hallReserved(ctx context.Context) gateway.Answer {
	text, _, ok := c.session.Live()
	if !ok {
		return alert(AnswerNoActiveGame)
	}
	content := render.HallReserved(text, c.roster)
	h, err := c.gw.SendMessage(ctx, c.group, content.Text, content.Options(true))
	if err != nil {
		c.logDelivery(ctx, "hall.reserved", c.group, err)
		return alert(AnswerGroupUnreachable)
	}
	if err := c.session.Republish(h); err != nil {
		logger.Error(ctx, component, "hall.reserved", slog.String("err", err.Error()))
		return alert(AnswerGroupUnreachable)
	}
	logger.Info(ctx, component, "hall.reserved",
		slog.Int("message_id", h.MessageID),
		slog.Int("participants", c.roster.Len()),
	)
	return gateway.Answer{Text: AnswerHallReserved}
}

func (c *Coordinator) signUp(ctx context.Context, e event.Press) gateway.Answer {
	if c.session.State() != announcement.Published {
		return alert(AnswerNoActiveGame)
	}
	if c.roster.SignUp(e.Sender) == roster.AlreadySignedUp {
		return gateway.Answer{Text: AnswerAlreadySignedUp}
	}
	logger.Info(ctx, component, "roster.signup", slog.Int("participants", c.roster.Len()))
	c.sync(ctx)
	return gateway.Answer{Text: AnswerSignedUp}
}

func (c *Coordinator) cancelSignUp(ctx context.Context, e event.Press) gateway.Answer {
	if c.session.State() != announcement.Published {
		return alert(AnswerNoActiveGame)
	}
	if c.roster.CancelSignUp(e.Sender.ID) == roster.NotSignedUp {
		return gateway.Answer{Text: AnswerNotSignedUp}
	}
	logger.Info(ctx, component, "roster.cancel", slog.Int("participants", c.roster.Len()))
	c.sync(ctx)
	return gateway.Answer{Text: AnswerSignUpCancelled}
}

func (c *Coordinator) confirmPayment(ctx context.Context, e event.Press) gateway.Answer {
	if c.session.State() != announcement.Published {
		return alert(AnswerNoActiveGame)
	}
	p, changed, err := c.roster.MarkPaid(e.Sender.ID)
	if errors.Is(err, roster.ErrNotRegistered) {
		return alert(AnswerNotRegistered)
	}
	if !changed {
		return gateway.Answer{Text: AnswerPaymentNoted}
	}
	logger.Info(ctx, component, "roster.paid", slog.Bool("paid", p.Paid))
	c.notifyAdmins(ctx, render.PaymentNotice(p.Name))
	c.sync(ctx)
	return gateway.Answer{Text: AnswerPaymentNoted}
}

func (c *Coordinator) notifyAdmins(ctx context.Context, text string) {
	admins := c.gate.Admins()
	recipients := make([]gateway.ChatID, 0, len(admins))
	for _, id := range admins {
		recipients = append(recipients, gateway.ChatID(id))
	}
	for _, d := range gateway.Failed(gateway.Broadcast(ctx, c.gw, recipients, text, gateway.SendOptions{})) {
		c.logDelivery(ctx, "payment.notice", d.To, d.Err)
	}
}

// sync re-renders the live group message after a roster change.
func (c *Coordinator) sync(ctx context.Context) {
	text, h, ok := c.session.Live()
	if !ok {
		return
	}
	content := render.Announcement(text, c.roster)
	if c.session.Reserved() {
		content = render.HallReserved(text, c.roster)
	}
	if err := c.gw.EditMessage(ctx, h, content.Text, content.Options(true)); err != nil {
		c.logDelivery(ctx, "announcement.sync", h.ChatID, err)
	}
}

func (c *Coordinator) send(ctx context.Context, op string, to gateway.ChatID, text string, opts gateway.SendOptions) {
	if _, err := c.gw.SendMessage(ctx, to, text, opts); err != nil {
		c.logDelivery(ctx, op, to, err)
	}
}

func (c *Coordinator) answer(ctx context.Context, e event.Press, ans gateway.Answer) error {
	if err := c.gw.AnswerCallback(ctx, e.CallbackID, ans); err != nil {
		c.logDelivery(ctx, "callback.answer", gateway.ChatID(e.Sender.ID), err)
		return err
	}
	return nil
}

func (c *Coordinator) logDelivery(ctx context.Context, op string, to gateway.ChatID, err error) {
	logger.Warn(ctx, component, "deliver.failed",
		slog.String("op", op),
		slog.Int64("recipient", int64(to)),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
	)
}

func alert(text string) gateway.Answer {
	return gateway.Answer{Text: text, ShowAlert: true}
}
