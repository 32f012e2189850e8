package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

func testRenderer(w, h int) *Renderer {
	return NewRenderer(w, h, sim.DefaultParams())
}

func TestRendererFrameShape(t *testing.T) {
	r := testRenderer(60, 20)

	out := r.Render(sim.Snapshot{}, flashState{})
	lines := strings.Split(out, "\n")

	// Header + playfield + status
	if len(lines) != 20 {
		t.Errorf("Expected 20 lines, got %d", len(lines))
	}
}

func TestRendererClampsTinyTerminal(t *testing.T) {
	r := testRenderer(3, 2)

	out := r.Render(sim.Snapshot{}, flashState{})
	lines := strings.Split(out, "\n")

	if len(lines) != minFrameHeight {
		t.Errorf("Expected %d lines for tiny terminal, got %d", minFrameHeight, len(lines))
	}
}

func TestRendererDrawsBallAndPaddles(t *testing.T) {
	r := testRenderer(60, 20)

	snap := sim.Snapshot{Ball: sim.Vec2{X: 0.5, Y: 0.5}}
	out := r.Render(snap, flashState{})

	if !strings.ContainsRune(out, BallChar) {
		t.Error("Frame is missing the ball")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("Frame is missing the paddles")
	}
	if !strings.ContainsRune(out, NetChar) {
		t.Error("Frame is missing the net")
	}
}

func TestRendererCoordinateMapping(t *testing.T) {
	r := testRenderer(61, 22) // playfield 61x20

	if col := r.toCol(-1); col != 0 {
		t.Errorf("toCol(-1) = %d, want 0", col)
	}
	if col := r.toCol(1); col != 60 {
		t.Errorf("toCol(1) = %d, want 60", col)
	}
	if col := r.toCol(0); col != 30 {
		t.Errorf("toCol(0) = %d, want 30", col)
	}
	if row := r.toRow(1); row != 0 {
		t.Errorf("toRow(1) = %d, want 0", row)
	}
	if row := r.toRow(-1); row != 19 {
		t.Errorf("toRow(-1) = %d, want 19", row)
	}

	// Out-of-arena values clamp to the frame.
	if col := r.toCol(2); col != 60 {
		t.Errorf("toCol(2) = %d, want 60", col)
	}
	if row := r.toRow(-3); row != 19 {
		t.Errorf("toRow(-3) = %d, want 19", row)
	}
}

func TestRendererOverlays(t *testing.T) {
	r := testRenderer(60, 20)

	paused := r.Render(sim.Snapshot{Paused: true}, flashState{})
	if !strings.Contains(paused, "PAUSED") {
		t.Error("Paused frame is missing the pause overlay")
	}

	over := r.Render(sim.Snapshot{GameOver: true, Winner: sim.SideLeft, ScoreLeft: 11, ScoreRight: 7}, flashState{})
	if !strings.Contains(over, "LEFT WINS") {
		t.Error("Game over frame is missing the winner overlay")
	}
	if !strings.Contains(over, "11 - 7") {
		t.Error("Game over frame is missing the final score")
	}

	// Game over wins over paused.
	both := r.Render(sim.Snapshot{GameOver: true, Winner: sim.SideRight, Paused: true}, flashState{})
	if strings.Contains(both, "PAUSED") {
		t.Error("Game over frame should not show the pause overlay")
	}
}

func TestRendererHeaderLabels(t *testing.T) {
	r := testRenderer(60, 20)

	cpu := r.Render(sim.Snapshot{AIEnabled: true}, flashState{})
	if !strings.Contains(cpu, "CPU") {
		t.Error("CPU match frame is missing the CPU label")
	}

	hotseat := r.Render(sim.Snapshot{}, flashState{})
	if !strings.Contains(hotseat, "P2") {
		t.Error("Hot-seat frame is missing the P2 label")
	}
}

func TestFlashDecay(t *testing.T) {
	f := flashState{scoreFrames: 2, paddleFrames: 1}

	f.decay()
	if f.scoreFrames != 1 || f.paddleFrames != 0 {
		t.Errorf("After one decay: %+v", f)
	}

	f.decay()
	f.decay()
	if f.scoreFrames != 0 || f.paddleFrames != 0 {
		t.Errorf("Decay went negative: %+v", f)
	}
}
