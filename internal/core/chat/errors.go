package chat

import "errors"

var (
	// ErrMessagesRequired means the request carried no messages at all.
	ErrMessagesRequired = errors.New("messages required")
	// ErrEmptyUserMessage means the last non-system message is blank.
	ErrEmptyUserMessage = errors.New("empty_user_message")
	// ErrMissingCredential means no model credential was configured at startup.
	ErrMissingCredential = errors.New("model credential not configured")
)
