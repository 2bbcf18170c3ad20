package helpers

import (
	"context"
	"testing"
)

func TestCountMessageWithoutTallyIsNoop(t *testing.T) {
	CountMessage(context.Background(), true)
	if n, kb := CountersFrom(context.Background()).Snapshot(); n != 0 || kb {
		t.Fatalf("messages=%d kb=%v", n, kb)
	}
}

func TestCountMessageKeepsKeyboardFlag(t *testing.T) {
	ctx, m := WithCounters(context.Background())
	CountMessage(ctx, true)
	CountMessage(ctx, false)
	if n, kb := m.Snapshot(); n != 2 || !kb {
		t.Fatalf("messages=%d kb=%v", n, kb)
	}
}
