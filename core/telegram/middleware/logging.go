package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/m3rciful/gamebot/core/logger"
	"github.com/m3rciful/gamebot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/gamebot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

const receiptTTL = 10 * time.Second

// receipts remembers recently logged update IDs. The logger runs both globally
// and on each route, so one update passes through it more than once.
var receipts = struct {
	sync.Mutex
	seen map[int]time.Time
}{seen: make(map[int]time.Time)}

func firstReceipt(updateID int, now time.Time) bool {
	receipts.Lock()
	defer receipts.Unlock()
	for id, at := range receipts.seen {
		if now.Sub(at) > receiptTTL {
			delete(receipts.seen, id)
		}
	}
	if _, dup := receipts.seen[updateID]; dup {
		return false
	}
	receipts.seen[updateID] = now
	return true
}

// LoggerMiddleware attaches the logging context (rid, update meta) to the update
// and writes a sampled debug receipt line once per update.
func LoggerMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		if c.Get("update_start") == nil {
			c.Set("update_start", time.Now())
		}
		if logger.ShouldSampleDebug() && firstReceipt(c.Update().ID, time.Now()) {
			logger.LogEvent(ctx, logger.Component("tg"), slog.LevelDebug, "update.received", receiptAttrs(c)...)
		}
		return next(c)
	}
}

func receiptAttrs(c tele.Context) []slog.Attr {
	upd := c.Update()
	attrs := []slog.Attr{slog.String("status", "ok")}
	if ch := c.Chat(); ch != nil {
		attrs = append(attrs, slog.String("chat_type", string(ch.Type)))
	}
	if u := c.Sender(); u != nil && u.Username != "" {
		attrs = append(attrs, slog.String("username", logger.SanitizeLimit(u.Username, 64)))
	}
	switch {
	case upd.Callback != nil:
		if key := callbacks.Key(upd.Callback); key != "" {
			attrs = append(attrs, slog.String("cb_key", logger.SanitizeLimit(key, 128)))
		}
		if _, payload := callbacks.ParseCallbackData(upd.Callback.Data); payload != "" {
			attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(payload, 256)))
		}
	case upd.Message != nil && upd.Message.Text != "":
		attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(upd.Message.Text, 256)))
	}
	return attrs
}
