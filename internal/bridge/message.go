package bridge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNilSender is returned when a Message is built without a sender.
var ErrNilSender = errors.New("bridge: message sender is required")

// ErrUnknownKind is returned for message kinds that do not exist.
var ErrUnknownKind = errors.New("unknown message kind")

// Message is the abstraction side of the bridge. Implementations decorate
// content and hand it to the sender they were built with.
type Message interface {
	Send(content string) error
}

// Kind names a Message implementation.
type Kind string

const (
	KindUser  Kind = "user"
	KindAlert Kind = "alert"
)

// Kinds lists every known message kind.
var Kinds = []Kind{KindUser, KindAlert}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// NewMessage returns the message of kind k delivered through sender.
func NewMessage(k Kind, sender MessageSender) (Message, error) {
	switch k {
	case KindUser:
		return NewUserMessage(sender)
	case KindAlert:
		return NewSystemAlertMessage(sender)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// UserMessage is content written by a user.
type UserMessage struct {
	sender MessageSender
}

// NewUserMessage binds a UserMessage to sender. The sender is shared.
func NewUserMessage(sender MessageSender) (*UserMessage, error) {
	if isNilSender(sender) {
		return nil, ErrNilSender
	}
	return &UserMessage{sender: sender}, nil
}

func (m *UserMessage) Send(content string) error {
	return m.sender.Send("User Message: " + content)
}

// SystemAlertMessage is content raised by the system itself.
type SystemAlertMessage struct {
	sender MessageSender
}

// NewSystemAlertMessage binds a SystemAlertMessage to sender. The sender is shared.
func NewSystemAlertMessage(sender MessageSender) (*SystemAlertMessage, error) {
	if isNilSender(sender) {
		return nil, ErrNilSender
	}
	return &SystemAlertMessage{sender: sender}, nil
}

func (m *SystemAlertMessage) Send(content string) error {
	return m.sender.Send("System Alert: " + content)
}

// isNilSender also catches a nil pointer stored in a MessageSender interface.
func isNilSender(s MessageSender) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
