package core

// InputHandler buffers directional intent from raw key events. Pressing a
// directional key sets both the held and buffered directions; the buffer
// decays independently over a fixed number of ticks, so a turn can be
// queued slightly before reaching a junction.
//
// The handler is host-agnostic: feed it KeyDown/KeyUp with the key names
// below and call Tick once per simulation tick.

// BufferTicks is how long a buffered direction survives after the key
// producing it is no longer held.
const BufferTicks = 8

// keyDirections maps the physical key vocabulary onto directions:
// arrow keys, WASD, and the vim-style HJKL layout.
var keyDirections = map[string]Dir{
	"up": DirUp, "down": DirDown, "left": DirLeft, "right": DirRight,
	"w": DirUp, "s": DirDown, "a": DirLeft, "d": DirRight,
	"k": DirUp, "j": DirDown, "h": DirLeft, "l": DirRight,
}

const (
	keyAbility = "space"
	keyPause   = "p"
)

// InputHandler tracks held and buffered direction plus one-shot flags.
type InputHandler struct {
	held     Dir
	buffered Dir
	bufTicks int

	pressed map[string]Dir // currently-down directional keys

	ability bool // one-shot, cleared only by consumption
	pause   bool
}

// NewInputHandler creates an empty input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{
		held:     DirNone,
		buffered: DirNone,
		pressed:  make(map[string]Dir),
	}
}

// KeyDown records a key press. Unrecognized keys are a no-op.
func (in *InputHandler) KeyDown(key string) {
	if d, ok := keyDirections[key]; ok {
		in.pressed[key] = d
		in.held = d
		in.buffered = d
		in.bufTicks = BufferTicks
		return
	}
	switch key {
	case keyAbility:
		in.ability = true
	case keyPause:
		in.pause = true
	}
}

// KeyUp records a key release. The held direction clears only when no
// other still-pressed key maps to the same direction. The buffered
// direction is untouched; it decays on its own clock.
func (in *InputHandler) KeyUp(key string) {
	d, ok := in.pressed[key]
	if !ok {
		return
	}
	delete(in.pressed, key)

	if in.held != d {
		return
	}
	for _, other := range in.pressed {
		if other == d {
			return
		}
	}
	in.held = DirNone
}

// Tick advances the buffer decay. When the countdown reaches zero the
// buffer collapses to whatever is currently held (possibly none).
func (in *InputHandler) Tick() {
	if in.bufTicks > 0 {
		in.bufTicks--
		if in.bufTicks == 0 {
			in.buffered = in.held
		}
	}
}

// Held returns the currently-held direction, DirNone when no directional
// key is down.
func (in *InputHandler) Held() Dir {
	return in.held
}

// Buffered returns the buffered direction without consuming it.
func (in *InputHandler) Buffered() Dir {
	return in.buffered
}

// ConsumeBuffered returns and clears the buffered direction, re-seeding
// it from the held direction.
func (in *InputHandler) ConsumeBuffered() Dir {
	d := in.buffered
	in.buffered = in.held
	if in.held != DirNone {
		in.bufTicks = BufferTicks
	} else {
		in.bufTicks = 0
	}
	return d
}

// ConsumeAbility returns and clears the ability-activation flag.
func (in *InputHandler) ConsumeAbility() bool {
	v := in.ability
	in.ability = false
	return v
}

// ConsumePause returns and clears the pause flag.
func (in *InputHandler) ConsumePause() bool {
	v := in.pause
	in.pause = false
	return v
}

// Reset clears all input state.
func (in *InputHandler) Reset() {
	in.held = DirNone
	in.buffered = DirNone
	in.bufTicks = 0
	in.ability = false
	in.pause = false
	for k := range in.pressed {
		delete(in.pressed, k)
	}
}
