package helpers

import (
	"testing"

	"github.com/m3rciful/gamebot/core/logger"

	tele "gopkg.in/telebot.v4"
)

func callbackContext(t *testing.T) tele.Context {
	t.Helper()
	b, err := tele.NewBot(tele.Settings{Offline: true})
	if err != nil {
		t.Fatalf("new bot: %v", err)
	}
	return b.NewContext(tele.Update{ID: 9, Callback: &tele.Callback{
		ID:      "cb",
		Sender:  &tele.User{ID: 3},
		Message: &tele.Message{ID: 1, Chat: &tele.Chat{ID: -100}},
	}})
}

func TestUpdateMeta(t *testing.T) {
	updateID, userID, chatID := UpdateMeta(callbackContext(t))
	if updateID != 9 || userID != 3 || chatID != -100 {
		t.Fatalf("meta = %d %d %d", updateID, userID, chatID)
	}
}

func TestBuildContextIsCached(t *testing.T) {
	c := callbackContext(t)
	first := BuildContext(c)
	if logger.RIDFrom(first) == "" || logger.UserIDFrom(first) != 3 || logger.ChatIDFrom(first) != -100 {
		t.Fatal("context lacks update metadata")
	}
	if BuildContext(c) != first {
		t.Fatal("second call must reuse the stored context")
	}

	tagged := WithHandler(c, "callback.signup")
	if logger.HandlerFrom(tagged) != "callback.signup" {
		t.Fatalf("handler = %q", logger.HandlerFrom(tagged))
	}
	if stored, _ := ContextFrom(c); stored != tagged {
		t.Fatal("tagged context must be stored")
	}
}
