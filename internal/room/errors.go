package room

import "errors"

var (
	ErrRoomNameEmpty           = errors.New("room name is empty")
	ErrConferencingUnavailable = errors.New("conferencing server unavailable")
	ErrNotifierStopped         = errors.New("room notifier stopped")
	ErrInvalidWebhook          = errors.New("invalid webhook")
)
