package errors

import "errors"

var (
	ErrMissingBotToken   = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingRelayChat  = errors.New("RELAY_CHAT_ID environment variable is required")
	ErrUnauthorized      = errors.New("unauthorized user")
	ErrClientUnavailable = errors.New("identity client is not connected")
	ErrNoIdentity        = errors.New("no retrieval identity configured")
)
