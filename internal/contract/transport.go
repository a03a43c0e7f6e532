package contract

import "context"

//go:generate mockgen -source=transport.go -destination=../../mocks/transport_mock.go -package=mocks

// Transport delivers a formatted message to one chat.
// This allows mocking in tests while keeping the Telegram client simple
type Transport interface {
	// Send returns nil only when the messaging service accepted the message.
	Send(ctx context.Context, chatID, text string) error
}
