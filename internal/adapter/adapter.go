package adapter

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"
)

// DefaultTimeFormat renders timestamps as "2006-01-02 15:04:05".
const DefaultTimeFormat = "2006-01-02 15:04:05"

var (
	// ErrNilAdaptee is returned when an Adapter is built without an adaptee.
	ErrNilAdaptee = errors.New("adapter: adaptee is required")
	// ErrNilTarget is returned when client code is handed no target.
	ErrNilTarget = errors.New("adapter: target is required")
)

// Target is the capability clients expect.
type Target interface {
	Request() string
}

// Adaptee is an existing component whose interface clients cannot use directly.
type Adaptee struct {
	now    func() time.Time
	layout string
}

// AdapteeOption customises an Adaptee.
type AdapteeOption func(*Adaptee)

// WithClock replaces the clock used to stamp requests.
func WithClock(now func() time.Time) AdapteeOption {
	return func(a *Adaptee) {
		if now != nil {
			a.now = now
		}
	}
}

// WithTimeFormat replaces the timestamp layout.
func WithTimeFormat(layout string) AdapteeOption {
	return func(a *Adaptee) {
		if layout != "" {
			a.layout = layout
		}
	}
}

// NewAdaptee creates an Adaptee stamping requests with the current local time.
func NewAdaptee(opts ...AdapteeOption) *Adaptee {
	a := &Adaptee{now: time.Now, layout: DefaultTimeFormat}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SpecificRequest returns the adaptee's own timestamped description.
func (a *Adaptee) SpecificRequest() string {
	return "Adaptee's specific request: " + a.now().Format(a.layout)
}

// Adapter makes an Adaptee usable as a Target.
type Adapter struct {
	adaptee *Adaptee
}

var _ Target = (*Adapter)(nil)

// NewAdapter wraps adaptee. The adaptee is shared, not copied.
func NewAdapter(adaptee *Adaptee) (*Adapter, error) {
	if adaptee == nil {
		return nil, ErrNilAdaptee
	}
	return &Adapter{adaptee: adaptee}, nil
}

// Request delegates to the adaptee and prefixes its answer.
func (a *Adapter) Request() string {
	return "Adapter: " + a.adaptee.SpecificRequest()
}

// ClientCode is a client that only knows about Target. It writes the
// target's answer as a single line.
func ClientCode(w io.Writer, target Target) error {
	if isNilTarget(target) {
		return ErrNilTarget
	}
	if _, err := fmt.Fprintln(w, target.Request()); err != nil {
		return fmt.Errorf("writing request result: %w", err)
	}
	return nil
}

// isNilTarget also catches a nil pointer stored in a Target interface.
func isNilTarget(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
