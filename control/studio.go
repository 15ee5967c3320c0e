// Package control routes decoded OSC messages to actions on a video
// production host. The Router owns the address grammar; the host itself
// is reached through the Studio interface.
package control

// Studio is the host surface the Router drives. Implementations talk to
// the actual production software; every method is side effecting and may
// fail independently. The Router never rolls back a partially executed
// sequence, it logs the failure and moves on.
//
// Scene and transition lists are ordered as the host presents them; the
// Router addresses both by position.
type Studio interface {
	// Scenes returns the scene names in list order.
	Scenes() ([]string, error)
	// PreviewScene returns the name of the scene staged for activation.
	PreviewScene() (string, error)
	// SetPreviewScene stages the named scene.
	SetPreviewScene(name string) error

	// Transitions returns the transition names in list order.
	Transitions() ([]string, error)
	// SetCurrentTransition selects the named transition.
	SetCurrentTransition(name string) error
	// TriggerTransition runs the current transition, taking the preview
	// scene live.
	TriggerTransition() error
	// SetTransitionDuration sets the fixed duration of the current
	// transition, in milliseconds.
	SetTransitionDuration(ms int) error

	// SetSourceVolume sets the volume multiplier of the named source.
	SetSourceVolume(name string, volume float64) error

	StartRecording() error
	StopRecording() error
	StartStreaming() error
	StopStreaming() error
}

// numeric converts a float32 or int32 OSC argument to a float64.
func numeric(arg interface{}) (float64, bool) {
	switch v := arg.(type) {
	case float32:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// triggered reports whether args is the single 1.0 a momentary control
// sends on press. The matching 0.0 sent on release, and any other
// argument shape, must stay a no-op so every trigger is safe against
// press/release pairs.
func triggered(args []interface{}) bool {
	if len(args) != 1 {
		return false
	}
	v, ok := numeric(args[0])
	return ok && v == 1
}
