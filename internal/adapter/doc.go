// Package adapter shows the Adapter pattern.
//
// An Adaptee exposes SpecificRequest, which clients do not know how to call.
// Adapter wraps exactly one Adaptee and satisfies the Target interface that
// clients depend on, reformatting the adaptee's output on the way through.
//
//	adaptee := adapter.NewAdaptee()
//	target, err := adapter.NewAdapter(adaptee)
//	if err != nil {
//	    return err
//	}
//	_ = adapter.ClientCode(os.Stdout, target)
package adapter
