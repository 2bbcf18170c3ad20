// Package callbacks decodes inline button payloads.
package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// ParseCallbackData splits Telebot's "\f<unique>|<payload>" encoding.
// Data without the form-feed prefix is treated the same way.
func ParseCallbackData(data string) (string, string) {
	data = strings.TrimPrefix(data, "\f")
	unique, payload, _ := strings.Cut(data, "|")
	return strings.TrimSpace(unique), payload
}

// CallbackKey returns the button key of the callback in c.
func CallbackKey(c tele.Context) string {
	return Key(c.Callback())
}

// Key prefers cb.Unique, which Telebot fills when a handler is bound to the button itself.
func Key(cb *tele.Callback) string {
	if cb == nil {
		return ""
	}
	if cb.Unique != "" {
		return cb.Unique
	}
	k, _ := ParseCallbackData(cb.Data)
	return k
}
