package control

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/luxcue/obs-osc/osc"
)

// Default settle delays. The host applies scene and transition changes
// asynchronously and exposes no completion signal here, so sequences
// that chain a preview change into a transition wait a fixed delay
// between the two steps. Tune per show; a host that delivers transition
// completion events would make both obsolete.
const (
	DefaultSettleDelay    = 200 * time.Millisecond
	DefaultTransitionHold = 2 * time.Second
)

// Router matches decoded OSC messages against the control grammar and
// drives a Studio. Matching is positional and permissive: anything that
// does not fit a known shape is ignored without error, since OSC senders
// commonly broadcast into overlapping namespaces.
//
// Router implements osc.Handler. The osc.Listener invokes it from a
// single worker goroutine, so actions never interleave.
type Router struct {
	// SettleDelay is the pause between staging a preview scene and
	// triggering the transition that takes it live.
	SettleDelay time.Duration

	// TransitionHold is the pause between triggering a transition and
	// advancing the preview to the next scene in a go sequence.
	TransitionHold time.Duration

	// Log receives diagnostics for failed host calls. Defaults to
	// slog.Default.
	Log *slog.Logger

	studio Studio
	routes []route
}

// NewRouter returns a Router driving the given Studio.
func NewRouter(studio Studio) *Router {
	r := &Router{
		SettleDelay:    DefaultSettleDelay,
		TransitionHold: DefaultTransitionHold,
		Log:            slog.Default(),
		studio:         studio,
	}

	// The grammar, one route per shape. Wire numbers are 1 based and
	// arrive 0 based in match.indices; '%' segments carry raw values.
	// Longer and fully literal shapes come before the placeholder shapes
	// they overlap with.
	r.routes = []route{
		{compile("/obs/source/volume"), r.sourceVolume},
		{compile("/obs/source/*/volume"), r.namedSourceVolume},
		{compile("/obs/transition/start"), r.transitionStart},
		{compile("/obs/transition/duration/%"), r.transitionDurationValue},
		{compile("/obs/transition/duration"), r.transitionDuration},
		{compile("/obs/transition/#/start"), r.transitionStartAt},
		{compile("/obs/transition/#/select"), r.transitionSelect},
		{compile("/obs/transition/#/duration"), r.transitionDurationAt},
		{compile("/obs/scene/#/preview"), r.scenePreview},
		{compile("/obs/scene/#/start"), r.sceneStart},
		{compile("/obs/scene/#/go"), r.sceneGo},
		{compile("/obs/scene/#/transition/#/start"), r.sceneTransitionStart},
		{compile("/obs/scene/#/transition/#/go"), r.sceneTransitionGo},
		{compile("/obs/go"), r.obsGo},
		{compile("/obs/recording/start"), r.recordingStart},
		{compile("/obs/recording/stop"), r.recordingStop},
		{compile("/obs/streaming/start"), r.streamingStart},
		{compile("/obs/streaming/stop"), r.streamingStop},
	}
	return r
}

// HandleMessage routes one decoded message. Implements osc.Handler.
func (r *Router) HandleMessage(msg *osc.Message) {
	parts := strings.Split(msg.Address, "/")
	if len(parts) <= 2 || parts[1] != "obs" {
		return
	}

	for _, rt := range r.routes {
		if m, ok := rt.match(parts[1:], msg.Arguments); ok {
			rt.action(m)
			return
		}
	}
}

////
// Route table machinery
////

type segKind int

const (
	segLiteral segKind = iota
	segIndex   // wire number, delivered 0 based
	segNumber  // wire number, delivered as is
	segName    // free text
)

type segment struct {
	kind segKind
	lit  string
}

type route struct {
	segs   []segment
	action func(m match)
}

// match carries what a route extracted from one address pattern.
type match struct {
	indices []int
	names   []string
	args    []interface{}
}

// compile turns a route pattern into its segment list. '#' marks a
// 1 based wire index, '%' a raw number and '*' a name segment.
func compile(pattern string) []segment {
	parts := strings.Split(pattern, "/")[1:]
	segs := make([]segment, len(parts))
	for i, p := range parts {
		switch p {
		case "#":
			segs[i] = segment{kind: segIndex}
		case "%":
			segs[i] = segment{kind: segNumber}
		case "*":
			segs[i] = segment{kind: segName}
		default:
			segs[i] = segment{kind: segLiteral, lit: p}
		}
	}
	return segs
}

func (rt route) match(parts []string, args []interface{}) (match, bool) {
	if len(parts) != len(rt.segs) {
		return match{}, false
	}

	m := match{args: args}
	for i, seg := range rt.segs {
		switch seg.kind {
		case segLiteral:
			if parts[i] != seg.lit {
				return match{}, false
			}
		case segIndex, segNumber:
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return match{}, false
			}
			if seg.kind == segIndex {
				n--
			}
			m.indices = append(m.indices, n)
		case segName:
			m.names = append(m.names, parts[i])
		}
	}
	return m, true
}

////
// Actions
////

func (r *Router) sourceVolume(m match) {
	if len(m.args) != 2 {
		return
	}
	name, ok := m.args[0].(string)
	if !ok {
		return
	}
	level, ok := numeric(m.args[1])
	if !ok {
		return
	}
	r.try("set source volume", r.studio.SetSourceVolume(name, level))
}

func (r *Router) namedSourceVolume(m match) {
	if len(m.args) != 1 {
		return
	}
	level, ok := numeric(m.args[0])
	if !ok {
		return
	}
	r.try("set source volume", r.studio.SetSourceVolume(m.names[0], level))
}

func (r *Router) transitionStart(m match) {
	if triggered(m.args) {
		r.transition(-1)
	}
}

func (r *Router) transitionStartAt(m match) {
	if triggered(m.args) {
		r.transition(m.indices[0])
	}
}

func (r *Router) transitionSelect(m match) {
	if triggered(m.args) {
		r.selectTransition(m.indices[0])
	}
}

func (r *Router) transitionDuration(m match) {
	if len(m.args) != 1 {
		return
	}
	d, ok := numeric(m.args[0])
	if !ok {
		return
	}
	r.try("set transition duration", r.studio.SetTransitionDuration(int(d)))
}

func (r *Router) transitionDurationValue(m match) {
	if triggered(m.args) {
		r.try("set transition duration", r.studio.SetTransitionDuration(m.indices[0]))
	}
}

func (r *Router) transitionDurationAt(m match) {
	if len(m.args) != 1 {
		return
	}
	d, ok := numeric(m.args[0])
	if !ok {
		return
	}
	// Selecting first is the only way to reach a specific transition's
	// duration on hosts that only expose the current one.
	r.selectTransition(m.indices[0])
	r.try("set transition duration", r.studio.SetTransitionDuration(int(d)))
}

func (r *Router) scenePreview(m match) {
	if triggered(m.args) {
		r.setPreview(m.indices[0])
	}
}

func (r *Router) sceneStart(m match) {
	if triggered(m.args) {
		r.setPreview(m.indices[0])
		r.settle()
		r.transition(-1)
	}
}

func (r *Router) sceneGo(m match) {
	if triggered(m.args) {
		r.setPreview(m.indices[0])
		r.settle()
		r.runGo(-1)
	}
}

func (r *Router) sceneTransitionStart(m match) {
	if triggered(m.args) {
		r.setPreview(m.indices[0])
		r.settle()
		r.transition(m.indices[1])
	}
}

func (r *Router) sceneTransitionGo(m match) {
	if triggered(m.args) {
		r.setPreview(m.indices[0])
		r.settle()
		r.runGo(m.indices[1])
	}
}

func (r *Router) obsGo(m match) {
	if triggered(m.args) {
		r.runGo(-1)
	}
}

func (r *Router) recordingStart(m match) {
	if triggered(m.args) {
		r.try("start recording", r.studio.StartRecording())
	}
}

func (r *Router) recordingStop(m match) {
	if triggered(m.args) {
		r.try("stop recording", r.studio.StopRecording())
	}
}

func (r *Router) streamingStart(m match) {
	if triggered(m.args) {
		r.try("start streaming", r.studio.StartStreaming())
	}
}

func (r *Router) streamingStop(m match) {
	if triggered(m.args) {
		r.try("stop streaming", r.studio.StopStreaming())
	}
}

////
// Studio sequences
////

// setPreview stages the scene at idx. Out of range indices are a no-op.
func (r *Router) setPreview(idx int) {
	scenes, err := r.studio.Scenes()
	if err != nil {
		r.try("list scenes", err)
		return
	}
	if idx < 0 || idx >= len(scenes) {
		return
	}
	r.try("set preview scene", r.studio.SetPreviewScene(scenes[idx]))
}

// selectTransition makes the transition at idx current. Out of range
// indices are a no-op.
func (r *Router) selectTransition(idx int) {
	transitions, err := r.studio.Transitions()
	if err != nil {
		r.try("list transitions", err)
		return
	}
	if idx < 0 || idx >= len(transitions) {
		return
	}
	r.try("select transition", r.studio.SetCurrentTransition(transitions[idx]))
}

// transition triggers the transition at idx, or the current one when idx
// is negative.
func (r *Router) transition(idx int) {
	if idx >= 0 {
		r.selectTransition(idx)
	}
	r.try("trigger transition", r.studio.TriggerTransition())
}

// nextScene returns the scene following the current preview in list
// order, wrapping to the first scene at the end of the list or when no
// preview is staged. Returns "" when the host has no scenes.
func (r *Router) nextScene() string {
	scenes, err := r.studio.Scenes()
	if err != nil {
		r.try("list scenes", err)
		return ""
	}
	if len(scenes) == 0 {
		return ""
	}
	if len(scenes) > 1 {
		if cur, err := r.studio.PreviewScene(); err == nil {
			for i, s := range scenes {
				if s == cur && i+1 < len(scenes) {
					return scenes[i+1]
				}
			}
		}
	}
	return scenes[0]
}

// runGo takes the preview scene live with the transition at idx (or the
// current one when idx is negative), then stages the next scene in list
// order so a sequence of go triggers walks the scene list.
func (r *Router) runGo(idx int) {
	next := r.nextScene()
	r.transition(idx)
	if r.TransitionHold > 0 {
		time.Sleep(r.TransitionHold)
	}
	if next != "" {
		r.try("advance preview scene", r.studio.SetPreviewScene(next))
	}
}

func (r *Router) settle() {
	if r.SettleDelay > 0 {
		time.Sleep(r.SettleDelay)
	}
}

// try logs a failed host call. Host failures never abort or unwind the
// rest of a sequence.
func (r *Router) try(op string, err error) {
	if err != nil {
		r.Log.Warn("studio call failed", "op", op, "err", err)
	}
}
