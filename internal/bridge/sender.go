// Package bridge shows the Bridge pattern: message kinds vary independently
// of the transport that delivers them.
package bridge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MessageSender is the implementor side of the bridge.
type MessageSender interface {
	Send(message string) error
}

// Transport names a MessageSender implementation.
type Transport string

const (
	TransportEmail Transport = "email"
	TransportSMS   Transport = "sms"
)

// Transports lists every known transport.
var Transports = []Transport{TransportEmail, TransportSMS}

// ErrUnknownTransport is returned for transports with no sender.
var ErrUnknownTransport = errors.New("unknown transport")

// ParseTransport maps a case-insensitive name to a Transport.
func ParseTransport(s string) (Transport, error) {
	t := Transport(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Transports {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransport, s)
}

// NewSender returns the sender for t writing to w. A nil w means stdout.
func NewSender(t Transport, w io.Writer) (MessageSender, error) {
	switch t {
	case TransportEmail:
		return NewEmailSender(w), nil
	case TransportSMS:
		return NewSMSSender(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, string(t))
	}
}

// EmailSender delivers messages tagged as EMAIL.
type EmailSender struct {
	out io.Writer
}

// NewEmailSender creates an EmailSender writing to w, or stdout when w is nil.
func NewEmailSender(w io.Writer) *EmailSender {
	return &EmailSender{out: orStdout(w)}
}

func (s *EmailSender) Send(message string) error {
	return deliver(s.out, "EMAIL", message)
}

// SMSSender delivers messages tagged as SMS.
type SMSSender struct {
	out io.Writer
}

// NewSMSSender creates an SMSSender writing to w, or stdout when w is nil.
func NewSMSSender(w io.Writer) *SMSSender {
	return &SMSSender{out: orStdout(w)}
}

func (s *SMSSender) Send(message string) error {
	return deliver(s.out, "SMS", message)
}

func deliver(w io.Writer, transport, message string) error {
	if _, err := fmt.Fprintf(w, "Sending %s: %s\n", transport, message); err != nil {
		return fmt.Errorf("sending %s: %w", transport, err)
	}
	return nil
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
