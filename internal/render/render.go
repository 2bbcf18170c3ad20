// Package render turns the announcement and roster into message text and keyboards.
// Everything here is pure; the same input always yields the same output.
package render

import (
	"fmt"
	"strings"

	"github.com/m3rciful/gamebot/core/telegram/format"
	"github.com/m3rciful/gamebot/internal/event"
	"github.com/m3rciful/gamebot/internal/gateway"
	"github.com/m3rciful/gamebot/internal/roster"
)

const (
	ParticipantsHeader = "📝 Participants:"
	NobodyYet          = "_nobody yet_"
	PaidMarker         = "💰"

	hallReservedBanner = "*HALL RESERVED*"
	adminMenuPrompt    = "Choose an action:"
	draftPrompt        = "Enter the announcement text:"
	reportEmpty        = "Nobody signed up."
)

// Content is a rendered message body with its inline keyboard.
type Content struct {
	Text   string
	Layout gateway.Layout
}

// Options returns gateway send options for the content.
func (c Content) Options(markdown bool) gateway.SendOptions {
	return gateway.SendOptions{Markdown: markdown, Layout: c.Layout}
}

var labels = map[event.Button]string{
	event.NewGame:          "📝 New game",
	event.ShowParticipants: "📋 Participants",
	event.CancelGame:       "❌ Cancel game",
	event.HallReserved:     "✅ Hall reserved",
	event.Publish:          "🚀 Publish",
	event.SignUp:           "✅ Sign up",
	event.CancelSignUp:     "❌ Cancel sign-up",
	event.ConfirmPayment:   "💰 I paid",
}

// Label returns the caption shown on a button.
func Label(b event.Button) string {
	return labels[b]
}

func column(buttons ...event.Button) gateway.Layout {
	rows := make(gateway.Layout, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []gateway.Button{{Label: Label(b), Key: b.String()}})
	}
	return rows
}

// PublicLayout is the keyboard attached to the group roster message.
func PublicLayout() gateway.Layout {
	return column(event.SignUp, event.CancelSignUp, event.ConfirmPayment)
}

// AdminLayout is the admin control panel keyboard.
func AdminLayout() gateway.Layout {
	return column(event.NewGame, event.ShowParticipants, event.CancelGame, event.HallReserved)
}

// Announcement renders the group message: announcement text, blank line, participants block.
func Announcement(text string, r *roster.Roster) Content {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(ParticipantsHeader)
	b.WriteByte('\n')
	b.WriteString(Participants(r))
	return Content{Text: b.String(), Layout: PublicLayout()}
}

// HallReserved renders the re-announcement sent once the hall is booked.
func HallReserved(text string, r *roster.Roster) Content {
	c := Announcement(text, r)
	c.Text = hallReservedBanner + "\n\n" + c.Text
	return c
}

// Participants renders the numbered Markdown listing or the placeholder for an empty roster.
func Participants(r *roster.Roster) string {
	lines := listing(r, format.EscapeV1)
	if len(lines) == 0 {
		return NobodyYet
	}
	return strings.Join(lines, "\n")
}

// ParticipantsReport is the plain-text listing sent privately to an admin.
func ParticipantsReport(r *roster.Roster) string {
	lines := listing(r, func(s string) string { return s })
	body := reportEmpty
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}
	return ParticipantsHeader + "\n\n" + body
}

func listing(r *roster.Roster, escape func(string) string) []string {
	if r == nil {
		return nil
	}
	var lines []string
	n := 0
	for p := range r.All() {
		n++
		line := fmt.Sprintf("%d. %s", n, escape(p.Name))
		if p.Paid {
			line += " " + PaidMarker
		}
		lines = append(lines, line)
	}
	return lines
}

// AdminMenu is the private control panel sent on /start.
func AdminMenu() Content {
	return Content{Text: adminMenuPrompt, Layout: AdminLayout()}
}

// DraftPrompt asks the admin for the announcement text.
func DraftPrompt() string {
	return draftPrompt
}

// DraftPreview echoes the captured draft with a publish button.
func DraftPreview(text string) Content {
	return Content{
		Text:   fmt.Sprintf("You entered:\n\n%s\n\nPublish?", text),
		Layout: column(event.Publish),
	}
}

// CancelNotice is posted to the group when the game is cancelled.
func CancelNotice() string {
	return "🚫 The game was cancelled by an administrator."
}

// PublishedNotice confirms publication to the admin.
func PublishedNotice() string {
	return "✅ Announcement sent to the group."
}

// PaymentNotice tells admins that a participant confirmed payment.
func PaymentNotice(name string) string {
	return fmt.Sprintf("💸 %s %s confirmed payment.", name, PaidMarker)
}
