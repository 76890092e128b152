package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"color-game/internal/logger"
	"color-game/internal/round"
	"color-game/internal/ui"
)

// Clock abstracts wall time so pause lengths can be tested without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Game. Zero MaxRounds means DefaultMaxRounds; pauses are used as given.
type Options struct {
	MaxRounds     int
	FeedbackPause time.Duration
	GameOverPause time.Duration
	// InterruptiblePauses makes a quit during a feedback or game-over hold end the game at once.
	// When false the quit is remembered and honored at the next input poll.
	InterruptiblePauses bool
	Clock               Clock
	Logger              *log.Logger
}

const (
	DefaultMaxRounds     = 10
	DefaultFeedbackPause = 1500 * time.Millisecond
	DefaultGameOverPause = 3 * time.Second
)

// Game is the round state machine. It owns no goroutines; Run drives it frame by frame
// on the caller's thread.
type Game struct {
	surface ui.Surface
	events  ui.EventSource
	gen     *round.Generator
	opts    Options
	log     *log.Logger

	state    State
	phase    Phase
	current  round.Round
	buttons  []*ui.Button
	feedback string
	resolved int

	quit        bool
	quitLatched bool
}

// New returns a game ready to start its first round.
func New(surface ui.Surface, events ui.EventSource, gen *round.Generator, opts Options) *Game {
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	l := opts.Logger
	if l == nil {
		l = logger.Discard()
	}
	return &Game{
		surface: surface,
		events:  events,
		gen:     gen,
		opts:    opts,
		log:     l,
		state:   State{MaxRounds: opts.MaxRounds},
		phase:   PhaseRoundStart,
	}
}

// State returns a copy of the score and round counter.
func (g *Game) State() State { return g.state }

// Phase returns the current state-machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Round returns the round being played.
func (g *Game) Round() round.Round { return g.current }

// Buttons returns the answer buttons of the current round.
func (g *Game) Buttons() []*ui.Button { return g.buttons }

// Feedback returns the message from the last resolved guess.
func (g *Game) Feedback() string { return g.feedback }

// Run plays until all rounds are resolved and the game-over screen has been shown,
// or until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) Result {
	for g.phase != PhaseDone {
		g.Step(ctx)
	}
	res := Result{Score: g.state.Score, Rounds: g.resolved, Quit: g.quit}
	g.log.Info("game finished", "score", res.Score, "rounds", res.Rounds, "quit", res.Quit)
	return res
}

// Step advances the state machine by one transition. AwaitingInput consumes a single frame.
func (g *Game) Step(ctx context.Context) {
	switch g.phase {
	case PhaseRoundStart:
		g.startRound()
	case PhaseAwaitingInput:
		g.awaitInput(ctx)
	case PhaseFeedback:
		if !g.hold(ctx, g.feedback, g.opts.FeedbackPause) {
			g.terminate()
			return
		}
		if g.state.Round < g.state.MaxRounds {
			g.setPhase(PhaseRoundStart)
		} else {
			g.setPhase(PhaseGameOver)
		}
	case PhaseGameOver:
		if !g.hold(ctx, GameOverMessage(g.state.Score), g.opts.GameOverPause) {
			g.terminate()
			return
		}
		g.setPhase(PhaseDone)
	}
}

func (g *Game) setPhase(p Phase) {
	g.log.Debug("phase", "from", g.phase, "to", p)
	g.phase = p
}

func (g *Game) terminate() {
	g.quit = true
	g.setPhase(PhaseDone)
}

func (g *Game) startRound() {
	g.state.Round++
	g.current = g.gen.Next()
	w, _ := g.surface.Size()
	g.buttons = ui.LayoutButtons(w, g.current.Options)
	g.feedback = ""
	g.log.Debug("round started", "round", g.state.Round, "correct", g.current.CorrectName, "options", g.current.Options)
	g.setPhase(PhaseAwaitingInput)
}

// awaitInput draws one frame and handles the events that arrived with it.
func (g *Game) awaitInput(ctx context.Context) {
	if g.quitLatched || ctx.Err() != nil {
		g.terminate()
		return
	}
	drawRound(g.surface, g.current.CorrectRGB, g.buttons, g.state)

	for _, ev := range g.events.PollEvents() {
		switch ev.Kind {
		case ui.EventQuit:
			g.terminate()
			return
		case ui.EventClick:
			if b := ui.HitTest(g.buttons, ev.Pos); b != nil {
				g.resolve(b.Label)
				return
			}
		}
	}
}

// resolve scores a guess and moves to the feedback screen.
func (g *Game) resolve(label string) {
	correct := label == g.current.CorrectName
	if correct {
		g.state.Score++
	}
	g.resolved++
	g.feedback = FeedbackMessage(correct, g.current.CorrectName)
	g.log.Debug("guess", "round", g.state.Round, "label", label, "correct", correct, "score", g.state.Score)
	g.setPhase(PhaseFeedback)
}

// hold shows msg for d, presenting a frame and polling input each iteration so the window
// stays responsive. It returns false if the game must end now.
func (g *Game) hold(ctx context.Context, msg string, d time.Duration) bool {
	deadline := g.opts.Clock.Now().Add(d)
	for {
		drawMessage(g.surface, msg)
		for _, ev := range g.events.PollEvents() {
			if ev.Kind != ui.EventQuit {
				continue
			}
			if g.opts.InterruptiblePauses {
				return false
			}
			g.quitLatched = true
		}
		if ctx.Err() != nil {
			return false
		}
		if !g.opts.Clock.Now().Before(deadline) {
			return true
		}
	}
}
