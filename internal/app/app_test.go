package app

import (
	"context"
	"testing"

	coreconfig "github.com/m3rciful/gamebot/core/config"
	tg "github.com/m3rciful/gamebot/core/telegram"
	"github.com/m3rciful/gamebot/internal/event"

	tele "gopkg.in/telebot.v4"
)

func testConfig() *coreconfig.Config {
	return &coreconfig.Config{Telegram: coreconfig.TelegramConfig{
		Token:       "123:abc",
		AdminIDs:    coreconfig.IDList{1, 2},
		GroupChatID: -100,
	}}
}

func TestRegistryCoversEveryButton(t *testing.T) {
	reg, err := New(testConfig()).Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	for _, b := range event.Buttons() {
		if _, ok := reg.GetCallback(b.String()); !ok {
			t.Fatalf("no callback for %s", b)
		}
	}
	key, cmd, ok := reg.LookupCommand("/start")
	if !ok || key != "/start" || !cmd.AdminOnly {
		t.Fatalf("start = %q %+v %v", key, cmd, ok)
	}
	if len(reg.ListCommands(true)) != 0 {
		t.Fatal("admin commands must stay out of the public menu")
	}
}

func TestTelegramRunOptions(t *testing.T) {
	a := New(testConfig())
	opts, err := a.TelegramRunOptions()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Config == nil || opts.Registry == nil || len(opts.Middlewares) == 0 {
		t.Fatalf("options = %+v", opts)
	}
	endpoints := map[any]bool{}
	for _, r := range opts.Routes {
		endpoints[r.Endpoint] = true
	}
	for _, want := range []any{tele.OnCallback, tele.OnText, "/start"} {
		if !endpoints[want] {
			t.Fatalf("missing route %v", want)
		}
	}
	if err := opts.OnStart(context.Background(), tg.Runtime{}); err == nil {
		t.Fatal("OnStart must reject a runtime without a bot")
	}
}
