package core_test

import (
	"testing"

	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

func TestInputHoldAndRelease(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("up")
	if in.Held() != core.DirUp {
		t.Errorf("expected held up, got %v", in.Held())
	}
	if in.Buffered() != core.DirUp {
		t.Errorf("expected buffered up, got %v", in.Buffered())
	}

	in.KeyUp("up")
	if in.Held() != core.DirNone {
		t.Errorf("expected no held direction after release, got %v", in.Held())
	}
}

func TestInputAlternateKeyLayouts(t *testing.T) {
	cases := []struct {
		key  string
		want core.Dir
	}{
		{"w", core.DirUp}, {"s", core.DirDown}, {"a", core.DirLeft}, {"d", core.DirRight},
		{"k", core.DirUp}, {"j", core.DirDown}, {"h", core.DirLeft}, {"l", core.DirRight},
	}
	for _, tc := range cases {
		in := core.NewInputHandler()
		in.KeyDown(tc.key)
		if in.Held() != tc.want {
			t.Errorf("key %q: expected %v, got %v", tc.key, tc.want, in.Held())
		}
	}
}

func TestInputBufferSurvivesRelease(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("left")
	in.KeyUp("left")

	// Buffer holds the direction for BufferTicks after release
	for i := 0; i < core.BufferTicks-1; i++ {
		in.Tick()
		if in.Buffered() != core.DirLeft {
			t.Fatalf("buffer lost after %d ticks", i+1)
		}
	}

	// One more tick collapses it to the (empty) held direction
	in.Tick()
	if in.Buffered() != core.DirNone {
		t.Errorf("expected buffer to decay, got %v", in.Buffered())
	}
}

func TestInputBufferHeldKeyRefreshes(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("right")
	for i := 0; i < core.BufferTicks*3; i++ {
		in.Tick()
	}

	// Still held, so decay collapses to the held direction, not none
	if in.Buffered() != core.DirRight {
		t.Errorf("buffer should track a held key, got %v", in.Buffered())
	}
}

func TestInputConsumeBuffered(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("down")
	in.KeyUp("down")

	if d := in.ConsumeBuffered(); d != core.DirDown {
		t.Errorf("expected buffered down, got %v", d)
	}
	// Nothing held, so the buffer is now empty
	if d := in.ConsumeBuffered(); d != core.DirNone {
		t.Errorf("expected empty buffer after consumption, got %v", d)
	}
}

func TestInputConsumeBufferedReseedsFromHeld(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("up")
	if d := in.ConsumeBuffered(); d != core.DirUp {
		t.Fatalf("expected up, got %v", d)
	}
	// Key still down: buffer reseeds from the held direction
	if in.Buffered() != core.DirUp {
		t.Errorf("expected reseed from held key, got %v", in.Buffered())
	}
}

func TestInputTwoKeysSameDirection(t *testing.T) {
	in := core.NewInputHandler()

	// Arrow and WASD mapping to the same direction
	in.KeyDown("up")
	in.KeyDown("w")

	in.KeyUp("up")
	if in.Held() != core.DirUp {
		t.Errorf("direction should stay held while a second key is down, got %v", in.Held())
	}

	in.KeyUp("w")
	if in.Held() != core.DirNone {
		t.Errorf("expected no held direction, got %v", in.Held())
	}
}

func TestInputNewerKeyWins(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("up")
	in.KeyDown("left")
	if in.Held() != core.DirLeft {
		t.Errorf("latest key should win, got %v", in.Held())
	}

	// Releasing the newer key does not restore the older one
	in.KeyUp("left")
	if in.Held() != core.DirNone {
		t.Errorf("expected no held direction, got %v", in.Held())
	}
}

func TestInputAbilityOneShot(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("space")
	if !in.ConsumeAbility() {
		t.Error("expected ability flag set")
	}
	if in.ConsumeAbility() {
		t.Error("ability flag should clear on consumption")
	}
}

func TestInputPauseOneShot(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("p")
	if !in.ConsumePause() {
		t.Error("expected pause flag set")
	}
	if in.ConsumePause() {
		t.Error("pause flag should clear on consumption")
	}
}

func TestInputUnknownKeyIgnored(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("x")
	in.KeyUp("x")
	if in.Held() != core.DirNone || in.Buffered() != core.DirNone {
		t.Error("unknown key should be a no-op")
	}
}

func TestInputReset(t *testing.T) {
	in := core.NewInputHandler()

	in.KeyDown("up")
	in.KeyDown("space")
	in.KeyDown("p")
	in.Reset()

	if in.Held() != core.DirNone {
		t.Errorf("held survived reset: %v", in.Held())
	}
	if in.Buffered() != core.DirNone {
		t.Errorf("buffer survived reset: %v", in.Buffered())
	}
	if in.ConsumeAbility() {
		t.Error("ability flag survived reset")
	}
	if in.ConsumePause() {
		t.Error("pause flag survived reset")
	}
}
