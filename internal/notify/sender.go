// Package notify delivers one-way, best-effort order notifications to
// the user's chat channel. The channel itself is abstracted behind
// Sender; the bridge never sees the chat protocol.
package notify

import (
	"context"
)

// Button is an inline URL button attached to a message.
type Button struct {
	Label string
	URL   string
}

// Message is a chat message ready for delivery.
type Message struct {
	Text    string
	Buttons []Button
}

// Sender delivers a message to a user by their opaque chat identity.
// Delivery is attempted at most once; retries are the caller's problem
// and nobody here has one.
type Sender interface {
	Send(ctx context.Context, userID int64, msg Message) error
}
