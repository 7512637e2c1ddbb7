// Package demo holds one entry point per pattern. Each reproduces the
// classic demonstration output for its pattern on the given writer.
package demo

import (
	"fmt"
	"io"
	"time"

	"patterns/internal/adapter"
	"patterns/internal/bridge"
	"patterns/internal/builder"
	"patterns/internal/config"
	"patterns/internal/render"
	"patterns/pkg/logging"
)

// Options tune the demos. The zero value reproduces the classic output.
type Options struct {
	Format       render.Format
	TimeFormat   string
	UserMessage  string
	AlertMessage string
	// Now overrides the adapter clock; nil means time.Now.
	Now func() time.Time
}

// OptionsFromConfig derives Options from loaded configuration.
func OptionsFromConfig(cfg config.PatternsConfig) (Options, error) {
	format, err := render.ParseFormat(cfg.GlobalSettings.Output)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Format:       format,
		TimeFormat:   cfg.Adapter.TimeFormat,
		UserMessage:  cfg.Bridge.UserMessage,
		AlertMessage: cfg.Bridge.AlertMessage,
	}, nil
}

func (o Options) withDefaults() Options {
	defaults := config.GetDefaultConfig()
	if o.Format == "" {
		o.Format = render.FormatText
	}
	if o.TimeFormat == "" {
		o.TimeFormat = defaults.Adapter.TimeFormat
	}
	if o.UserMessage == "" {
		o.UserMessage = defaults.Bridge.UserMessage
	}
	if o.AlertMessage == "" {
		o.AlertMessage = defaults.Bridge.AlertMessage
	}
	return o
}

// Demo describes one runnable pattern demonstration.
type Demo struct {
	Name        string
	Title       string
	Description string
	Run         func(w io.Writer, opts Options) error
}

// All returns the demos in presentation order.
func All() []Demo {
	return []Demo{
		{
			Name:        "adapter",
			Title:       "Adapter",
			Description: "Wrap an incompatible service behind the interface a client expects",
			Run:         RunAdapter,
		},
		{
			Name:        "bridge",
			Title:       "Bridge",
			Description: "Vary message kinds independently of their delivery transport",
			Run:         RunBridge,
		},
		{
			Name:        "builder",
			Title:       "Builder",
			Description: "Assemble houses step by step, with or without a director",
			Run:         RunBuilder,
		},
	}
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	for _, d := range All() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// RunAdapter prints a heading and passes an adapted adaptee to client code.
func RunAdapter(w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	if err := render.Heading(w, opts.Format, "Using Adapter pattern:"); err != nil {
		return err
	}
	adaptee := adapter.NewAdaptee(adapter.WithClock(opts.Now), adapter.WithTimeFormat(opts.TimeFormat))
	target, err := adapter.NewAdapter(adaptee)
	if err != nil {
		return err
	}
	logging.Debug("adapter", "Adapter wraps adaptee with layout %q", opts.TimeFormat)
	return adapter.ClientCode(w, target)
}

// RunBridge sends a user message by email and a system alert by SMS. The
// text format prints the delivered lines only; other formats add a heading.
func RunBridge(w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	if opts.Format != render.FormatText {
		if err := render.Heading(w, opts.Format, "Using Bridge pattern:"); err != nil {
			return err
		}
	}
	email := bridge.NewEmailSender(w)
	sms := bridge.NewSMSSender(w)

	msg1, err := bridge.NewUserMessage(email)
	if err != nil {
		return err
	}
	if err := msg1.Send(opts.UserMessage); err != nil {
		return err
	}
	logging.Debug("bridge", "Sent user message over %s", bridge.TransportEmail)

	msg2, err := bridge.NewSystemAlertMessage(sms)
	if err != nil {
		return err
	}
	if err := msg2.Send(opts.AlertMessage); err != nil {
		return err
	}
	logging.Debug("bridge", "Sent system alert over %s", bridge.TransportSMS)
	return nil
}

// RunBuilder builds a minimal igloo and a full stone house through the
// director, then a half-done stone house by driving a builder directly.
func RunBuilder(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	director := builder.NewDirector()

	iglooBuilder := builder.NewIglooBuilder()
	if err := director.SetBuilder(iglooBuilder); err != nil {
		return err
	}
	if err := director.BuildMinimalViableHouse(); err != nil {
		return err
	}
	if err := render.House(w, opts.Format, "Minimal Igloo", iglooBuilder.House()); err != nil {
		return err
	}
	if opts.Format == render.FormatText {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	stoneBuilder := builder.NewStoneHouseBuilder()
	if err := director.SetBuilder(stoneBuilder); err != nil {
		return err
	}
	if err := director.BuildFullFeaturedHouse(); err != nil {
		return err
	}
	if err := render.House(w, opts.Format, "Full Stone House", stoneBuilder.House()); err != nil {
		return err
	}

	// Skip roof and interior to leave the house half done.
	custom := builder.NewStoneHouseBuilder()
	custom.BuildBasement()
	custom.BuildStructure()
	logging.Debug("builder", "Custom build stopped after %s and %s", builder.StepBasement, builder.StepStructure)
	return render.House(w, opts.Format, "Custom (step-by-step) Stone House", custom.House())
}
