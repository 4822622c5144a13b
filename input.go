package cinder

// Button is a bitmask of controller buttons. A multi-bit mask is a button
// combination: queries report it down only when every bit is down.
type Button uint32

// Controller button masks, matching the handheld's control layout.
const (
	ButtonSelect   Button = 0x000001
	ButtonStart    Button = 0x000008
	ButtonUp       Button = 0x000010
	ButtonRight    Button = 0x000020
	ButtonDown     Button = 0x000040
	ButtonLeft     Button = 0x000080
	ButtonLTrigger Button = 0x000100
	ButtonRTrigger Button = 0x000200
	ButtonTriangle Button = 0x001000
	ButtonCircle   Button = 0x002000
	ButtonCross    Button = 0x004000
	ButtonSquare   Button = 0x008000
)

// Input tracks per-frame button edge transitions over the native polled
// state. Update must run exactly once per frame before Pressed/Held/Released
// are evaluated for that frame; the queries are pure reads.
//
// Lifecycle is initialize-once (Engine.NewInput); there is no teardown.
type Input struct {
	native Native
	prev   Button // buttons down on the previous Update
	curr   Button // buttons down on the most recent Update
}

// NewInput initializes the input subsystem and returns its edge tracker.
func (e *Engine) NewInput() *Input {
	return &Input{native: e.native}
}

// Update polls the native button state and shifts the one-frame history.
// Call exactly once per frame, before any queries.
func (in *Input) Update() {
	in.prev = in.curr
	in.curr = in.native.PollButtons()
}

func (in *Input) down(mask Button) bool {
	return in.curr&mask == mask
}

func (in *Input) wasDown(mask Button) bool {
	return in.prev&mask == mask
}

// Pressed reports whether mask went down this frame. True for exactly one
// Update cycle per press.
func (in *Input) Pressed(mask Button) bool {
	return in.down(mask) && !in.wasDown(mask)
}

// Held reports whether mask is down now and was already down last frame.
// True every cycle after the first while held.
func (in *Input) Held(mask Button) bool {
	return in.down(mask) && in.wasDown(mask)
}

// Released reports whether mask came up this frame. True for exactly one
// Update cycle at release.
func (in *Input) Released(mask Button) bool {
	return !in.down(mask) && in.wasDown(mask)
}
