package netutil

import (
	"errors"
	"net"
)

// ShouldRetry reports whether a request failed before any byte reached the
// Telegram API. Only such failures are safe to repeat: a timeout after the
// request was written may already have produced a message in the chat.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}
