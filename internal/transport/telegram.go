// Package transport connects the game to Telegram through Telebot.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tghelpers "github.com/m3rciful/gamebot/core/telegram/helpers"
	"github.com/m3rciful/gamebot/core/telegram/keyboard"
	"github.com/m3rciful/gamebot/internal/gateway"

	tele "gopkg.in/telebot.v4"
)

// ErrNotBound is wrapped in delivery errors raised before the bot is attached.
var ErrNotBound = errors.New("transport: bot not bound")

// BotAPI is the subset of *tele.Bot the gateway calls.
type BotAPI interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error
}

// Telegram implements gateway.Gateway on top of a Telebot bot.
// The bot is created by the runtime, so it is attached later with Bind.
type Telegram struct {
	mu  sync.RWMutex
	api BotAPI
}

var _ gateway.Gateway = (*Telegram)(nil)

// NewTelegram returns a gateway; pass nil to bind the bot later.
func NewTelegram(api BotAPI) *Telegram {
	return &Telegram{api: api}
}

// Bind attaches the bot used for all further calls.
func (t *Telegram) Bind(api BotAPI) {
	t.mu.Lock()
	t.api = api
	t.mu.Unlock()
}

func (t *Telegram) bot(ctx context.Context, op string) (BotAPI, error) {
	if err := ctx.Err(); err != nil {
		return nil, &gateway.DeliveryError{Op: op, Err: err}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.api == nil {
		return nil, &gateway.DeliveryError{Op: op, Err: ErrNotBound}
	}
	return t.api, nil
}

// SendMessage posts text to a chat and returns the handle of the new message.
func (t *Telegram) SendMessage(ctx context.Context, to gateway.ChatID, text string, opts gateway.SendOptions) (gateway.MessageHandle, error) {
	api, err := t.bot(ctx, "send")
	if err != nil {
		return gateway.MessageHandle{}, err
	}
	msg, err := api.Send(tele.ChatID(to), text, sendOptions(opts))
	if err != nil {
		return gateway.MessageHandle{}, deliveryError("send", err)
	}
	if msg == nil {
		return gateway.MessageHandle{}, &gateway.DeliveryError{Op: "send", Err: errors.New("empty response")}
	}
	h := gateway.MessageHandle{ChatID: to, MessageID: msg.ID}
	if msg.Chat != nil {
		h.ChatID = gateway.ChatID(msg.Chat.ID)
	}
	tghelpers.CountMessage(ctx, len(opts.Layout) > 0)
	return h, nil
}

// EditMessage replaces the text and keyboard of a message sent earlier.
func (t *Telegram) EditMessage(ctx context.Context, msg gateway.MessageHandle, text string, opts gateway.SendOptions) error {
	api, err := t.bot(ctx, "edit")
	if err != nil {
		return err
	}
	if msg.IsZero() {
		return &gateway.DeliveryError{Op: "edit", Err: errors.New("empty message handle")}
	}
	stored := tele.StoredMessage{MessageID: strconv.Itoa(msg.MessageID), ChatID: int64(msg.ChatID)}
	if _, err := api.Edit(stored, text, sendOptions(opts)); err != nil {
		return deliveryError("edit", err)
	}
	tghelpers.CountMessage(ctx, len(opts.Layout) > 0)
	return nil
}

// AnswerCallback acknowledges a button press. An empty answer only clears the spinner.
func (t *Telegram) AnswerCallback(ctx context.Context, callbackID string, answer gateway.Answer) error {
	api, err := t.bot(ctx, "answer")
	if err != nil {
		return err
	}
	resp := &tele.CallbackResponse{Text: answer.Text, ShowAlert: answer.ShowAlert}
	if err := api.Respond(&tele.Callback{ID: callbackID}, resp); err != nil {
		return &gateway.DeliveryError{Op: "answer", Err: err}
	}
	return nil
}

// deliveryError tags entity parse failures with gateway.ErrMarkup.
func deliveryError(op string, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "can't parse entities") {
		err = fmt.Errorf("%w: %w", gateway.ErrMarkup, err)
	}
	return &gateway.DeliveryError{Op: op, Err: err}
}

func sendOptions(opts gateway.SendOptions) *tele.SendOptions {
	so := &tele.SendOptions{ReplyMarkup: replyMarkup(opts.Layout)}
	if opts.Markdown {
		so.ParseMode = tele.ModeMarkdown
	}
	return so
}

func replyMarkup(layout gateway.Layout) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(layout))
	for _, row := range layout {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, b := range row {
			r = append(r, keyboard.InlineBtn{Text: b.Label, Unique: b.Key})
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}
