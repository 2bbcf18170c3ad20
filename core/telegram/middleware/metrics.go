package middleware

import (
	tghelpers "github.com/m3rciful/gamebot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// MessageMetricsMiddleware attaches a delivery tally to the update's logging context.
// Gateway sends made with that context are counted. A repeated pass keeps the first tally.
func MessageMetricsMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		if tghelpers.CountersFrom(ctx) == nil {
			ctx, _ = tghelpers.WithCounters(ctx)
			tghelpers.StoreContext(c, ctx)
		}
		return next(c)
	}
}

// GetCounters reads message count and keyboard presence for the current update.
func GetCounters(c tele.Context) (int, bool) {
	ctx, ok := tghelpers.ContextFrom(c)
	if !ok {
		return 0, false
	}
	return tghelpers.CountersFrom(ctx).Snapshot()
}
