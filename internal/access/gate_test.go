package access

import (
	"slices"
	"testing"
)

func TestGate(t *testing.T) {
	g := NewGate([]int64{5, 0, 3, 5})

	if !g.IsPrivileged(5) || !g.IsPrivileged(3) {
		t.Fatal("configured admins must be privileged")
	}
	if g.IsPrivileged(0) || g.IsPrivileged(4) {
		t.Fatal("unknown ids must not be privileged")
	}
	if got := g.Admins(); !slices.Equal(got, []int64{5, 3}) {
		t.Fatalf("admins = %v", got)
	}
}

func TestNilGateDeniesEveryone(t *testing.T) {
	var g *Gate
	if g.IsPrivileged(1) {
		t.Fatal("nil gate must deny")
	}
	if len(g.Admins()) != 0 {
		t.Fatal("nil gate has no admins")
	}
}
