package router

import (
	"log/slog"
	"time"

	tg "github.com/m3rciful/gamebot/core/telegram"
	"github.com/m3rciful/gamebot/core/telegram/callbacks"
	"github.com/m3rciful/gamebot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises fallback behaviour for callbacks.
type CallbackOptions struct {
	// NotFound overrides the registry fallback for unknown keys.
	NotFound tele.HandlerFunc
}

// CallbackRoute dispatches every inline button press by its key.
// The route never answers the callback itself: registered handlers answer
// exactly once, and unknown keys are answered by the fallback.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	resolve := func(key string) (tele.HandlerFunc, bool) {
		if h, ok := reg.GetCallback(key); ok && h != nil {
			return h, true
		}
		if opts.NotFound != nil {
			return opts.NotFound, false
		}
		if h := reg.CallbackNotFound(); h != nil {
			return h, false
		}
		return func(c tele.Context) error { return c.Respond() }, false
	}

	handler := func(c tele.Context) error {
		if c.Callback() == nil {
			return nil
		}
		start := time.Now()
		key := callbacks.CallbackKey(c)
		h, found := resolve(key)

		status := ""
		extras := []slog.Attr{slog.String("cb_key", key)}
		if !found {
			status = "skip"
			extras = append(extras, slog.String("reason", "not_found"))
		}
		return handleWithSummary(c, "callback."+normalizeHandlerName(key), start, status, "", func() error {
			return h(c)
		}, extras...)
	}

	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
