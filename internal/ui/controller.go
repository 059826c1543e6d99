package ui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/04pril/go-samegame/internal/samegame"
)

type Outcome int

const (
	Ignored Outcome = iota
	NewGame
	Selected
	Cleared
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case NewGame:
		return "new_game"
	case Selected:
		return "selected"
	case Cleared:
		return "cleared"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Controller turns pointer gestures into engine calls.
type Controller struct {
	s      *samegame.Session
	layout Layout
	log    zerolog.Logger
}

func NewController(s *samegame.Session, log zerolog.Logger) *Controller {
	return &Controller{
		s:      s,
		layout: Layout{Width: s.Width(), Height: s.Height()},
		log:    log.With().Str("component", "samegame").Logger(),
	}
}

func (c *Controller) Session() *samegame.Session { return c.s }
func (c *Controller) Layout() Layout             { return c.layout }

// Reset starts a new game.
func (c *Controller) Reset() {
	c.s.Reset()
	c.log.Debug().Int("width", c.s.Width()).Int("height", c.s.Height()).Msg("new game")
}

// Tap handles a press at pixel (px, py). The New Game slot always resets.
// Once the game is over board presses are ignored. A press on a marked
// tile commits the selection, any other press selects.
func (c *Controller) Tap(px, py int) Outcome {
	if c.layout.NewGameHit(px, py) {
		c.Reset()
		return NewGame
	}
	if c.s.GameOver() {
		return Ignored
	}
	x, y, ok := c.layout.CellAt(px, py)
	if !ok {
		return Ignored
	}
	return c.Press(x, y)
}

// Press dispatches a press on cell (x, y).
func (c *Controller) Press(x, y int) Outcome {
	if c.s.GameOver() {
		return Ignored
	}
	cell := c.s.At(x, y)
	if cell.State != samegame.Marked {
		if cell.State == samegame.Empty {
			return Ignored
		}
		n := c.s.Select(x, y)
		c.log.Debug().Int("x", x).Int("y", y).Int("color", cell.Color).Int("marked", n).Msg("select")
		return Selected
	}

	n := c.s.Marked()
	score := c.s.Score()
	if !c.s.Commit() {
		c.log.Debug().Int("marked", n).Msg("commit rejected")
		return Rejected
	}
	c.log.Debug().Int("cleared", n).Int("points", c.s.Score()-score).Int("score", c.s.Score()).Msg("commit")
	if c.s.BonusAwarded() && c.s.Remaining() == 0 {
		c.log.Info().Int("score", c.s.Score()).Msg("board cleared")
	}
	if c.s.GameOver() {
		c.log.Info().Int("score", c.s.Score()).Int("remaining", c.s.Remaining()).Msg("game over")
	}
	return Cleared
}

// StatusTexts are the three status bar labels.
func StatusTexts(s *samegame.Session) [3]string {
	var mid string
	switch {
	case s.Marked() > 1:
		mid = fmt.Sprintf("Marked: %d (+%d)", s.Marked(), s.Preview())
	case s.GameOver():
		mid = "Game Over!"
	}
	return [3]string{"New Game", mid, fmt.Sprintf("Score: %d", s.Score())}
}
