package game

import "fmt"

// Phase is where the main loop is in a round.
type Phase int

const (
	PhaseRoundStart Phase = iota
	PhaseAwaitingInput
	PhaseFeedback
	PhaseGameOver
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRoundStart:
		return "round-start"
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseFeedback:
		return "feedback"
	case PhaseGameOver:
		return "game-over"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the score and round counter carried across rounds.
// Round is the 1-based index of the current round; 0 before the first one starts.
type State struct {
	Score     int
	Round     int
	MaxRounds int
}

// Status is the line drawn in the corner of the round screen.
func (s State) Status() string {
	return fmt.Sprintf("Score: %d | Round: %d/%d", s.Score, s.Round, s.MaxRounds)
}

// Result is what Run returns. Rounds counts resolved rounds (a click was scored).
type Result struct {
	Score  int
	Rounds int
	Quit   bool
}

// FeedbackMessage is shown after each guess.
func FeedbackMessage(correct bool, correctName string) string {
	if correct {
		return "Correct!"
	}
	return "Wrong! Correct answer was " + correctName
}

// GameOverMessage is shown once all rounds are resolved.
func GameOverMessage(score int) string {
	return fmt.Sprintf("Game Over! Final Score: %d", score)
}
