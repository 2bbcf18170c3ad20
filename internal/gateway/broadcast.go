package gateway

import "context"

// Delivery is the per-recipient result of Broadcast.
type Delivery struct {
	To     ChatID
	Handle MessageHandle
	Err    error
}

// Broadcast sends the same message to every recipient in order. A failed send
// does not stop the remaining ones; callers inspect the results.
func Broadcast(ctx context.Context, gw Gateway, recipients []ChatID, text string, opts SendOptions) []Delivery {
	out := make([]Delivery, 0, len(recipients))
	for _, to := range recipients {
		h, err := gw.SendMessage(ctx, to, text, opts)
		out = append(out, Delivery{To: to, Handle: h, Err: err})
	}
	return out
}

// Failed filters deliveries that returned an error.
func Failed(ds []Delivery) []Delivery {
	var out []Delivery
	for _, d := range ds {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}
