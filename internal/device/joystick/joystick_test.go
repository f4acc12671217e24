package joystick

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// stubADC replays a sequence of (x, y) samples, repeating the last pair.
type stubADC struct {
	samples [][2]float64
	calls   int
	err     error
}

func (s *stubADC) ReadNorm(channel int) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	i := s.calls / 2
	if i >= len(s.samples) {
		i = len(s.samples) - 1
	}
	v := s.samples[i][channel]
	s.calls++
	return v, nil
}

type stubButton struct{ pressed bool }

func (b *stubButton) Pressed() bool { return b.pressed }

func newTestJoystick(adc ADC, btn Button) *Joystick {
	return New(adc, btn, Config{
		XChannel:     0,
		YChannel:     1,
		DeadZone:     0.1,
		PollInterval: time.Millisecond,
	}, log.New(io.Discard))
}

func TestMapDirection(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want core.Direction
	}{
		{"centered", 0.5, 0.5, core.DirNone},
		{"inside dead-zone", 0.55, 0.45, core.DirNone},
		{"left", 0.1, 0.5, core.DirLeft},
		{"right", 0.9, 0.5, core.DirRight},
		{"up", 0.5, 0.1, core.DirUp},
		{"down", 0.5, 0.9, core.DirDown},
		{"diagonal prefers horizontal", 0.9, 0.9, core.DirRight},
		{"diagonal prefers horizontal left", 0.1, 0.05, core.DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDirection(tt.x, tt.y, 0.1); got != tt.want {
				t.Errorf("mapDirection(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSampleReadsAxes(t *testing.T) {
	adc := &stubADC{samples: [][2]float64{{0.9, 0.5}}}
	j := newTestJoystick(adc, &stubButton{})

	if got := j.Sample(); got != core.DirRight {
		t.Errorf("Sample() = %v, want right", got)
	}
}

func TestSampleReadErrorIsNone(t *testing.T) {
	adc := &stubADC{err: errors.New("gpio gone")}
	j := newTestJoystick(adc, &stubButton{})

	if got := j.Sample(); got != core.DirNone {
		t.Errorf("Sample() = %v, want none on read error", got)
	}
}

func TestPollReturnsLastRealDirection(t *testing.T) {
	// Deflect up, then down, then recenter: the window must report down.
	adc := &stubADC{samples: [][2]float64{
		{0.5, 0.1},
		{0.5, 0.9},
		{0.5, 0.5},
	}}
	j := newTestJoystick(adc, &stubButton{})

	got := j.Poll(context.Background(), 20*time.Millisecond)
	if got != core.DirDown {
		t.Errorf("Poll() = %v, want down", got)
	}
}

func TestPollNoDeflectionIsNone(t *testing.T) {
	adc := &stubADC{samples: [][2]float64{{0.5, 0.5}}}
	j := newTestJoystick(adc, &stubButton{})

	if got := j.Poll(context.Background(), 10*time.Millisecond); got != core.DirNone {
		t.Errorf("Poll() = %v, want none", got)
	}
}

func TestPollStopsOnCancel(t *testing.T) {
	adc := &stubADC{samples: [][2]float64{{0.5, 0.5}}}
	j := newTestJoystick(adc, &stubButton{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	j.Poll(ctx, time.Second)
	if time.Since(start) > 200*time.Millisecond {
		t.Error("Poll ignored context cancellation")
	}
}

func TestButtonPressed(t *testing.T) {
	btn := &stubButton{pressed: true}
	j := newTestJoystick(&stubADC{samples: [][2]float64{{0.5, 0.5}}}, btn)

	if !j.ButtonPressed() {
		t.Error("ButtonPressed() = false, want true")
	}
	btn.pressed = false
	if j.ButtonPressed() {
		t.Error("ButtonPressed() = true, want false")
	}
}
