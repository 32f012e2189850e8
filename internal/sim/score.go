package sim

// matchState is the scoring state machine: Playing until a side reaches the
// win threshold, then GameOver until an explicit reset.
type matchState int

const (
	statePlaying matchState = iota
	stateGameOver
)

// ScoreManager owns both score counters, the win threshold, and the
// game-over flag. Once the match is over the counters are frozen until
// Reset.
type ScoreManager struct {
	scores     [2]int // [0] left, [1] right
	winScore   int
	state      matchState
	winner     Side
	onGameOver func(Side)
}

// NewScoreManager creates a score manager. A non-positive winScore falls
// back to the default threshold. onGameOver may be nil; when set it fires
// exactly once per match.
func NewScoreManager(winScore int, onGameOver func(Side)) *ScoreManager {
	if winScore <= 0 {
		winScore = DefaultWinScore
	}
	return &ScoreManager{
		winScore:   winScore,
		onGameOver: onGameOver,
	}
}

// ScorePoint awards a point to the given side. No-op once the match is over
// or for SideNone.
func (sm *ScoreManager) ScorePoint(side Side) {
	if sm.state == stateGameOver {
		return
	}
	switch side {
	case SideLeft:
		sm.scores[0]++
	case SideRight:
		sm.scores[1]++
	default:
		return
	}
	sm.checkWin()
}

func (sm *ScoreManager) checkWin() {
	var winner Side
	switch {
	case sm.scores[0] >= sm.winScore:
		winner = SideLeft
	case sm.scores[1] >= sm.winScore:
		winner = SideRight
	default:
		return
	}

	sm.state = stateGameOver
	sm.winner = winner
	if sm.onGameOver != nil {
		sm.onGameOver(winner)
	}
}

// Scores returns the left and right counters.
func (sm *ScoreManager) Scores() (left, right int) {
	return sm.scores[0], sm.scores[1]
}

// GameOver reports whether a side has won.
func (sm *ScoreManager) GameOver() bool {
	return sm.state == stateGameOver
}

// Winner returns the winning side if the match is over.
func (sm *ScoreManager) Winner() (Side, bool) {
	if sm.state != stateGameOver {
		return SideNone, false
	}
	return sm.winner, true
}

// WinScore returns the configured win threshold.
func (sm *ScoreManager) WinScore() int {
	return sm.winScore
}

// Reset zeroes both counters and returns to the Playing state. Calling it
// while already Playing with zero scores is a no-op.
func (sm *ScoreManager) Reset() {
	sm.scores = [2]int{}
	sm.state = statePlaying
	sm.winner = SideNone
}
