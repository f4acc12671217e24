package term

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/core"
)

func newTestPlatform() *Platform {
	return &Platform{
		dirs: make(chan core.Direction, 8),
		done: make(chan struct{}),
	}
}

func TestSampleDrainsLatestDirection(t *testing.T) {
	p := newTestPlatform()

	if got := p.Sample(); got != core.DirNone {
		t.Errorf("Sample() = %v, want none when idle", got)
	}

	p.pushDirection(core.DirUp)
	p.pushDirection(core.DirLeft)
	if got := p.Sample(); got != core.DirLeft {
		t.Errorf("Sample() = %v, want the latest direction", got)
	}
	if got := p.Sample(); got != core.DirNone {
		t.Errorf("Sample() = %v, want none after draining", got)
	}
}

func TestPollReturnsLastDirectionInWindow(t *testing.T) {
	p := newTestPlatform()
	p.pushDirection(core.DirRight)
	p.pushDirection(core.DirDown)

	got := p.Poll(context.Background(), 10*time.Millisecond)
	if got != core.DirDown {
		t.Errorf("Poll() = %v, want down", got)
	}
}

func TestPollRespectsCancel(t *testing.T) {
	p := newTestPlatform()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	p.Poll(ctx, time.Second)
	if time.Since(start) > 200*time.Millisecond {
		t.Error("Poll ignored context cancellation")
	}
}

func TestButtonIsEdgeTriggered(t *testing.T) {
	p := newTestPlatform()

	if p.ButtonPressed() {
		t.Error("button pressed before any key")
	}
	p.button.Store(true)
	if !p.ButtonPressed() {
		t.Error("press not observed")
	}
	if p.ButtonPressed() {
		t.Error("press observed twice")
	}
}

func TestModelMapsKeysToDirections(t *testing.T) {
	p := newTestPlatform()
	m := newModel(p)

	keys := []struct {
		msg  tea.KeyMsg
		want core.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.DirUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.DirDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.DirLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.DirRight},
	}

	for _, tt := range keys {
		m.Update(tt.msg)
		if got := p.Sample(); got != tt.want {
			t.Errorf("key %q -> %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelButtonAndQuit(t *testing.T) {
	p := newTestPlatform()
	m := newModel(p)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !p.ButtonPressed() {
		t.Error("space did not press the button")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command, want quit")
	}
}

func TestViewShowsLitPixels(t *testing.T) {
	p := newTestPlatform()
	m := newModel(p)

	var rows [core.FrameSize]byte
	rows[0] = 0x80
	updated, _ := m.Update(frameMsg(rows))

	view := updated.View()
	if !strings.Contains(view, "██") {
		t.Error("view missing lit pixel")
	}
	if !strings.Contains(view, "··") {
		t.Error("view missing dark pixels")
	}
}
