package transport

import (
	"context"
	"errors"
	"testing"

	tghelpers "github.com/m3rciful/gamebot/core/telegram/helpers"
	"github.com/m3rciful/gamebot/internal/gateway"

	tele "gopkg.in/telebot.v4"
)

type fakeBot struct {
	sendTo    tele.Recipient
	sendText  interface{}
	sendOpts  []interface{}
	edited    tele.Editable
	responded *tele.Callback
	resp      *tele.CallbackResponse
	err       error
}

func (f *fakeBot) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.sendTo, f.sendText, f.sendOpts = to, what, opts
	if f.err != nil {
		return nil, f.err
	}
	return &tele.Message{ID: 77, Chat: &tele.Chat{ID: -100123}}, nil
}

func (f *fakeBot) Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.edited, f.sendText, f.sendOpts = msg, what, opts
	return &tele.Message{}, f.err
}

func (f *fakeBot) Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error {
	f.responded = c
	if len(resp) > 0 {
		f.resp = resp[0]
	}
	return f.err
}

func TestSendMessageMapsOptions(t *testing.T) {
	bot := &fakeBot{}
	tg := NewTelegram(bot)
	layout := gateway.Layout{{{Label: "✅ Sign up", Key: "signup"}}}

	h, err := tg.SendMessage(context.Background(), -100123, "hi", gateway.SendOptions{Markdown: true, Layout: layout})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if h != (gateway.MessageHandle{ChatID: -100123, MessageID: 77}) {
		t.Fatalf("handle = %+v", h)
	}
	if bot.sendTo.Recipient() != "-100123" || bot.sendText != "hi" {
		t.Fatalf("sent %v to %v", bot.sendText, bot.sendTo.Recipient())
	}
	so, ok := bot.sendOpts[0].(*tele.SendOptions)
	if !ok || so.ParseMode != tele.ModeMarkdown {
		t.Fatalf("options = %+v", bot.sendOpts)
	}
	if btn := so.ReplyMarkup.InlineKeyboard[0][0]; btn.Text != "✅ Sign up" || btn.Unique != "signup" {
		t.Fatalf("button = %+v", btn)
	}
}

func TestSendMessagePlainWithoutKeyboard(t *testing.T) {
	bot := &fakeBot{}
	if _, err := NewTelegram(bot).SendMessage(context.Background(), 5, "plain", gateway.SendOptions{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	so := bot.sendOpts[0].(*tele.SendOptions)
	if so.ParseMode != tele.ModeDefault || so.ReplyMarkup != nil {
		t.Fatalf("options = %+v", so)
	}
}

func TestEditMessageUsesStoredHandle(t *testing.T) {
	bot := &fakeBot{}
	err := NewTelegram(bot).EditMessage(context.Background(), gateway.MessageHandle{ChatID: -1, MessageID: 9}, "x", gateway.SendOptions{})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	id, chat := bot.edited.MessageSig()
	if id != "9" || chat != -1 {
		t.Fatalf("edited %s in %d", id, chat)
	}

	if err := NewTelegram(bot).EditMessage(context.Background(), gateway.MessageHandle{}, "x", gateway.SendOptions{}); err == nil {
		t.Fatal("expected error for empty handle")
	}
}

func TestAnswerCallback(t *testing.T) {
	bot := &fakeBot{}
	if err := NewTelegram(bot).AnswerCallback(context.Background(), "cb-7", gateway.Answer{Text: "no", ShowAlert: true}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if bot.responded.ID != "cb-7" || !bot.resp.ShowAlert || bot.resp.Text != "no" {
		t.Fatalf("responded %+v with %+v", bot.responded, bot.resp)
	}
}

func TestFailuresAreDeliveryErrors(t *testing.T) {
	cause := errors.New("bot was blocked by the user")
	tg := NewTelegram(&fakeBot{err: cause})
	ctx := context.Background()

	_, sendErr := tg.SendMessage(ctx, 1, "x", gateway.SendOptions{})
	editErr := tg.EditMessage(ctx, gateway.MessageHandle{ChatID: 1, MessageID: 1}, "x", gateway.SendOptions{})
	answerErr := tg.AnswerCallback(ctx, "id", gateway.Answer{})
	for _, err := range []error{sendErr, editErr, answerErr} {
		var de *gateway.DeliveryError
		if !errors.As(err, &de) || !errors.Is(err, cause) {
			t.Fatalf("err = %v", err)
		}
	}
}

func TestUnboundGateway(t *testing.T) {
	tg := NewTelegram(nil)
	if _, err := tg.SendMessage(context.Background(), 1, "x", gateway.SendOptions{}); !errors.Is(err, ErrNotBound) {
		t.Fatalf("err = %v", err)
	}
	tg.Bind(&fakeBot{})
	if _, err := tg.SendMessage(context.Background(), 1, "x", gateway.SendOptions{}); err != nil {
		t.Fatalf("after bind: %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bot := &fakeBot{}
	if err := NewTelegram(bot).AnswerCallback(ctx, "id", gateway.Answer{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if bot.responded != nil {
		t.Fatal("no call expected on a cancelled context")
	}
}

func TestDeliveriesAreCountedOnTheUpdateContext(t *testing.T) {
	ctx, counters := tghelpers.WithCounters(context.Background())
	tg := NewTelegram(&fakeBot{})
	layout := gateway.Layout{{{Label: "✅ Sign up", Key: "signup"}}}

	if _, err := tg.SendMessage(ctx, 1, "x", gateway.SendOptions{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if n, kb := counters.Snapshot(); n != 1 || kb {
		t.Fatalf("after plain send: messages=%d kb=%v", n, kb)
	}
	if err := tg.EditMessage(ctx, gateway.MessageHandle{ChatID: 1, MessageID: 3}, "x", gateway.SendOptions{Layout: layout}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if n, kb := counters.Snapshot(); n != 2 || !kb {
		t.Fatalf("after edit: messages=%d kb=%v", n, kb)
	}

	failing := NewTelegram(&fakeBot{err: errors.New("forbidden")})
	_, _ = failing.SendMessage(ctx, 1, "x", gateway.SendOptions{})
	if n, _ := counters.Snapshot(); n != 2 {
		t.Fatalf("failed send counted: messages=%d", n)
	}
}

func TestEntityParseFailureIsMarkupError(t *testing.T) {
	cause := &tele.Error{Code: 400, Description: "Bad Request: can't parse entities: Can't find end of the entity starting at byte offset 4"}
	_, err := NewTelegram(&fakeBot{err: cause}).SendMessage(context.Background(), 1, "Game_Friday", gateway.SendOptions{Markdown: true})
	if !errors.Is(err, gateway.ErrMarkup) || !errors.Is(err, cause) {
		t.Fatalf("err = %v", err)
	}
	var de *gateway.DeliveryError
	if !errors.As(err, &de) || de.Code() != "malformed_markup" {
		t.Fatalf("code of %v", err)
	}

	_, err = NewTelegram(&fakeBot{err: errors.New("bot was blocked by the user")}).SendMessage(context.Background(), 1, "x", gateway.SendOptions{})
	if errors.Is(err, gateway.ErrMarkup) {
		t.Fatalf("plain failure tagged as markup: %v", err)
	}
}
