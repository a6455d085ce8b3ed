package commands

import "context"

// SmsSender delivers a text message to a phone number.
type SmsSender interface {
	Send(ctx context.Context, to, body string) error
}
