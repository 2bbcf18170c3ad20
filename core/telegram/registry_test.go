package telegram

import (
	"testing"

	"github.com/m3rciful/gamebot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegisterCommandValidation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCommand("start", commands.Command{Handler: noop, Description: "x"}); err == nil {
		t.Fatal("expected error for missing slash")
	}
	if err := reg.RegisterCommand("/start", commands.Command{Handler: noop}); err == nil {
		t.Fatal("expected error for missing description")
	}
	if err := reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "menu", AdminOnly: true}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "menu"}); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestListCommandsHidesAdminOnly(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "menu", AdminOnly: true})
	_ = reg.RegisterCommand("/help", commands.Command{Handler: noop, Description: "help"})

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "help" {
		t.Fatalf("visible = %+v", visible)
	}
	if all := reg.ListCommands(false); len(all) != 2 || all[0].Text != "help" || all[1].Text != "start" {
		t.Fatalf("all = %+v", all)
	}
}

func TestLookupCommand(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "menu"})
	for _, in := range []string{"start", "/start", "/start@gamebot"} {
		if key, _, ok := reg.LookupCommand(in); !ok || key != "/start" {
			t.Fatalf("LookupCommand(%q) = %q, %v", in, key, ok)
		}
	}
	if _, _, ok := reg.LookupCommand("/stop"); ok {
		t.Fatal("unexpected match")
	}
}

func TestRegisterCallback(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("signup", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("signup", noop); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.RegisterCallback("", noop); err == nil {
		t.Fatal("expected error for empty key")
	}
	_ = reg.RegisterCallback("publish", noop)
	if keys := reg.ListCallbacks(); len(keys) != 2 || keys[0] != "publish" {
		t.Fatalf("keys = %v", keys)
	}
	if _, ok := reg.GetCallback("publish"); !ok {
		t.Fatal("publish not found")
	}
}
