package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		in, key, payload string
	}{
		{"\fsignup", "signup", ""},
		{"\fconfirm_payment|42", "confirm_payment", "42"},
		{"cancel_game", "cancel_game", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		key, payload := ParseCallbackData(tc.in)
		if key != tc.key || payload != tc.payload {
			t.Fatalf("ParseCallbackData(%q) = %q, %q", tc.in, key, payload)
		}
	}
}

func TestKeyPrefersUnique(t *testing.T) {
	if got := Key(&tele.Callback{Unique: "signup", Data: "ignored"}); got != "signup" {
		t.Fatalf("key = %q", got)
	}
	if got := Key(&tele.Callback{Data: "\fhall_reserved"}); got != "hall_reserved" {
		t.Fatalf("key = %q", got)
	}
	if got := Key(nil); got != "" {
		t.Fatalf("key of nil callback = %q", got)
	}
}
