// Package gateway defines the messaging boundary the game logic talks to.
package gateway

import (
	"context"
	"errors"
	"fmt"
)

// ChatID addresses a private chat or the target group.
type ChatID int64

// MessageHandle identifies a message that can later be edited.
type MessageHandle struct {
	ChatID    ChatID
	MessageID int
}

// IsZero reports whether the handle points to no message.
func (h MessageHandle) IsZero() bool {
	return h.MessageID == 0
}

// Button is a single inline button: a label and the callback key it sends back.
type Button struct {
	Label string
	Key   string
}

// Layout is an inline keyboard, one slice per row.
type Layout [][]Button

// SendOptions controls formatting of an outgoing or edited message.
type SendOptions struct {
	Markdown bool
	Layout   Layout
}

// Answer is the reply to a button press.
type Answer struct {
	Text      string
	ShowAlert bool
}

// Gateway sends, edits and answers on behalf of the bot.
type Gateway interface {
	SendMessage(ctx context.Context, to ChatID, text string, opts SendOptions) (MessageHandle, error)
	EditMessage(ctx context.Context, msg MessageHandle, text string, opts SendOptions) error
	AnswerCallback(ctx context.Context, callbackID string, answer Answer) error
}

// ErrMarkup is wrapped in delivery errors when Telegram rejects the text's formatting.
var ErrMarkup = errors.New("malformed markup")

// DeliveryError wraps any transport failure.
type DeliveryError struct {
	Op  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Code is picked up by handler summaries as err_code.
func (e *DeliveryError) Code() string {
	if errors.Is(e.Err, ErrMarkup) {
		return "malformed_markup"
	}
	return "delivery_error"
}
