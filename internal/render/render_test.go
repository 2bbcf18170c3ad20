package render

import (
	"strings"
	"testing"

	"github.com/m3rciful/gamebot/internal/event"
	"github.com/m3rciful/gamebot/internal/roster"
)

func TestAnnouncementEmptyRoster(t *testing.T) {
	c := Announcement("Game Friday 7pm", roster.New())

	want := "Game Friday 7pm\n\n📝 Participants:\n_nobody yet_"
	if c.Text != want {
		t.Fatalf("text = %q, want %q", c.Text, want)
	}
	if len(c.Layout) != 3 {
		t.Fatalf("layout rows = %d, want 3", len(c.Layout))
	}
	keys := []event.Button{event.SignUp, event.CancelSignUp, event.ConfirmPayment}
	for i, row := range c.Layout {
		if len(row) != 1 || row[0].Key != keys[i].String() {
			t.Fatalf("row %d = %+v", i, row)
		}
	}
}

func TestAnnouncementListsInOrderWithMarkers(t *testing.T) {
	r := roster.New()
	r.SignUp(roster.Identity{ID: 1, FirstName: "A"})
	r.SignUp(roster.Identity{ID: 2, FirstName: "B", LastName: "C"})
	r.SignUp(roster.Identity{ID: 3, FirstName: "D"})
	r.MarkPaid(2)

	c := Announcement("x", r)
	want := "x\n\n📝 Participants:\n1. A\n2. B C 💰\n3. D"
	if c.Text != want {
		t.Fatalf("text = %q, want %q", c.Text, want)
	}
	if strings.Contains(c.Text, NobodyYet) {
		t.Fatal("placeholder rendered for non-empty roster")
	}
}

func TestAnnouncementEscapesNames(t *testing.T) {
	r := roster.New()
	r.SignUp(roster.Identity{ID: 1, FirstName: "snake_case"})

	if got := Participants(r); got != "1. snake\\_case" {
		t.Fatalf("participants = %q", got)
	}
	if got := ParticipantsReport(r); !strings.Contains(got, "1. snake_case") {
		t.Fatalf("report should be unescaped, got %q", got)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	r := roster.New()
	r.SignUp(roster.Identity{ID: 1, FirstName: "A"})
	first := Announcement("x", r)
	second := Announcement("x", r)
	if first.Text != second.Text || r.Len() != 1 {
		t.Fatal("render must not depend on or change state")
	}
}

func TestHallReserved(t *testing.T) {
	r := roster.New()
	r.SignUp(roster.Identity{ID: 1, FirstName: "A"})
	c := HallReserved("Game", r)
	if !strings.HasPrefix(c.Text, "*HALL RESERVED*\n\nGame\n\n") {
		t.Fatalf("text = %q", c.Text)
	}
	if !strings.HasSuffix(c.Text, "1. A") {
		t.Fatalf("roster missing: %q", c.Text)
	}
}

func TestAdminMenu(t *testing.T) {
	c := AdminMenu()
	want := []event.Button{event.NewGame, event.ShowParticipants, event.CancelGame, event.HallReserved}
	if len(c.Layout) != len(want) {
		t.Fatalf("rows = %d", len(c.Layout))
	}
	for i, b := range want {
		if c.Layout[i][0].Key != b.String() || c.Layout[i][0].Label == "" {
			t.Fatalf("row %d = %+v", i, c.Layout[i])
		}
	}
}

func TestParticipantsReportEmpty(t *testing.T) {
	if got := ParticipantsReport(roster.New()); got != "📝 Participants:\n\nNobody signed up." {
		t.Fatalf("report = %q", got)
	}
}

func TestEveryButtonHasLabel(t *testing.T) {
	for _, b := range event.Buttons() {
		if Label(b) == "" {
			t.Fatalf("button %s has no label", b)
		}
	}
}
