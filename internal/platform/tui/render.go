package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

// Rendering characters
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '╎'
)

// Minimum drawable frame size; smaller terminals get a clamped frame.
const (
	minFrameWidth  = 24
	minFrameHeight = 8
)

// flashDuration is how many ticks a score or paddle-hit highlight stays lit.
const flashDuration = 30

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	centerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// flashState tracks transient visual highlights driven by simulation events.
// It lives behind a pointer shared with the engine's event hooks, so it
// survives Bubble Tea's value-receiver model copies.
type flashState struct {
	scoreSide    sim.Side
	scoreFrames  int
	paddleSide   sim.Side
	paddleFrames int
}

// decay ages the highlights by one tick.
func (f *flashState) decay() {
	if f.scoreFrames > 0 {
		f.scoreFrames--
	}
	if f.paddleFrames > 0 {
		f.paddleFrames--
	}
}

// Renderer converts simulation snapshots into terminal frames. The frame is
// a header line, the playfield, and a status line.
type Renderer struct {
	width      int
	height     int
	halfHeight float64 // paddle half-length in arena units
}

// NewRenderer creates a renderer for the given terminal size.
func NewRenderer(width, height int, params sim.Params) *Renderer {
	r := &Renderer{halfHeight: params.PaddleLength / 2}
	r.Resize(width, height)
	return r
}

// Resize adjusts the frame to a new terminal size, clamping to the minimum.
func (r *Renderer) Resize(width, height int) {
	if width < minFrameWidth {
		width = minFrameWidth
	}
	if height < minFrameHeight {
		height = minFrameHeight
	}
	r.width = width
	r.height = height
}

// fieldHeight is the playfield row count, excluding header and status lines.
func (r *Renderer) fieldHeight() int {
	return r.height - 2
}

// toCol maps an arena x coordinate in [-1, 1] to a frame column.
func (r *Renderer) toCol(x float64) int {
	col := int((x + 1) / 2 * float64(r.width-1))
	if col < 0 {
		col = 0
	}
	if col >= r.width {
		col = r.width - 1
	}
	return col
}

// toRow maps an arena y coordinate in [-1, 1] to a playfield row. Arena y
// grows upward while rows grow downward.
func (r *Renderer) toRow(y float64) int {
	h := r.fieldHeight()
	row := int((1 - y) / 2 * float64(h-1))
	if row < 0 {
		row = 0
	}
	if row >= h {
		row = h - 1
	}
	return row
}

// Render draws one frame from a snapshot.
func (r *Renderer) Render(snap sim.Snapshot, flash flashState) string {
	grid := r.newGrid()

	r.drawNet(grid)
	r.drawPaddle(grid, r.toCol(-sim.PaddleX), snap.LeftPaddleY)
	r.drawPaddle(grid, r.toCol(sim.PaddleX), snap.RightPaddleY)
	grid[r.toRow(snap.Ball.Y)][r.toCol(snap.Ball.X)] = BallChar

	if snap.GameOver {
		r.drawOverlay(grid,
			fmt.Sprintf("%s WINS", strings.ToUpper(snap.Winner.String())),
			fmt.Sprintf("%d - %d  |  press r to play again", snap.ScoreLeft, snap.ScoreRight))
	} else if snap.Paused {
		r.drawOverlay(grid, "PAUSED", "press p to resume")
	}

	var sb strings.Builder
	sb.Grow(r.width * r.height * 2)

	sb.WriteString(r.renderHeader(snap, flash))
	sb.WriteByte('\n')
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(r.renderStatus(snap, flash))

	return sb.String()
}

// newGrid allocates a blank playfield.
func (r *Renderer) newGrid() [][]rune {
	grid := make([][]rune, r.fieldHeight())
	for i := range grid {
		row := make([]rune, r.width)
		for j := range row {
			row[j] = ' '
		}
		grid[i] = row
	}
	return grid
}

// drawNet draws the dashed center line.
func (r *Renderer) drawNet(grid [][]rune) {
	centerCol := r.width / 2
	for row := 0; row < len(grid); row += 2 {
		grid[row][centerCol] = NetChar
	}
}

// drawPaddle draws a vertical paddle centered on the given arena y.
func (r *Renderer) drawPaddle(grid [][]rune, col int, centerY float64) {
	top := r.toRow(centerY + r.halfHeight)
	bottom := r.toRow(centerY - r.halfHeight)
	for row := top; row <= bottom; row++ {
		grid[row][col] = PaddleChar
	}
}

// drawOverlay draws a centered message box over the playfield.
func (r *Renderer) drawOverlay(grid [][]rune, title, subtitle string) {
	boxW := len(title)
	if len(subtitle) > boxW {
		boxW = len(subtitle)
	}
	boxW += 4
	if boxW > r.width {
		boxW = r.width
	}
	boxH := 5
	if boxH > len(grid) {
		boxH = len(grid)
	}
	boxX := (r.width - boxW) / 2
	boxY := (len(grid) - boxH) / 2

	for row := boxY; row < boxY+boxH; row++ {
		for col := boxX; col < boxX+boxW; col++ {
			grid[row][col] = ' '
		}
	}
	for col := boxX; col < boxX+boxW; col++ {
		grid[boxY][col] = '─'
		grid[boxY+boxH-1][col] = '─'
	}
	for row := boxY; row < boxY+boxH; row++ {
		grid[row][boxX] = '│'
		grid[row][boxX+boxW-1] = '│'
	}
	grid[boxY][boxX] = '┌'
	grid[boxY][boxX+boxW-1] = '┐'
	grid[boxY+boxH-1][boxX] = '└'
	grid[boxY+boxH-1][boxX+boxW-1] = '┘'

	drawText(grid[boxY+1], boxX+(boxW-len(title))/2, title)
	if boxH >= 5 {
		drawText(grid[boxY+3], boxX+(boxW-len(subtitle))/2, subtitle)
	}
}

// drawText writes a string into a grid row, clipping at the edges.
func drawText(row []rune, col int, text string) {
	for i, ch := range text {
		x := col + i
		if x < 0 || x >= len(row) {
			continue
		}
		row[x] = ch
	}
}

// renderHeader renders the score line. The side that just scored flashes.
func (r *Renderer) renderHeader(snap sim.Snapshot, flash flashState) string {
	leftLabel := "P1"
	rightLabel := "P2"
	if snap.AIEnabled {
		rightLabel = "CPU"
	}

	leftScore := headerStyle.Render(fmt.Sprintf("%s %d", leftLabel, snap.ScoreLeft))
	rightScore := headerStyle.Render(fmt.Sprintf("%d %s", snap.ScoreRight, rightLabel))
	if flash.scoreFrames > 0 {
		switch flash.scoreSide {
		case sim.SideLeft:
			leftScore = flashStyle.Render(fmt.Sprintf("%s %d", leftLabel, snap.ScoreLeft))
		case sim.SideRight:
			rightScore = flashStyle.Render(fmt.Sprintf("%d %s", snap.ScoreRight, rightLabel))
		}
	}

	middle := centerStyle.Render(fmt.Sprintf("rally %d", snap.Rally))
	gap := r.width - lipgloss.Width(leftScore) - lipgloss.Width(rightScore) - lipgloss.Width(middle)
	if gap < 2 {
		gap = 2
	}
	left := gap / 2
	return leftScore + strings.Repeat(" ", left) + middle + strings.Repeat(" ", gap-left) + rightScore
}

// renderStatus renders the bottom help line.
func (r *Renderer) renderStatus(snap sim.Snapshot, flash flashState) string {
	var parts []string
	if snap.AIEnabled {
		parts = append(parts, fmt.Sprintf("cpu:%s", snap.Difficulty))
		parts = append(parts, "w/s or arrows move")
	} else {
		parts = append(parts, "hot-seat")
		parts = append(parts, "w/s left, arrows right")
	}
	parts = append(parts, "p pause", "r reset", "a cpu", "d difficulty", "q quit")

	line := strings.Join(parts, "  ")
	if flash.paddleFrames > 0 {
		line = fmt.Sprintf("%s returns!  %s", flash.paddleSide, line)
	}
	if len(line) > r.width {
		line = line[:r.width]
	}
	return statusStyle.Render(line)
}
