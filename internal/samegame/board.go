// Package samegame implements the SameGame puzzle engine: a grid of colored
// tiles cleared by selecting connected same-colored clusters.
package samegame

import (
	"math/rand"
	"strings"
	"time"
)

const (
	DefaultWidth  = 20
	DefaultHeight = 10
	DefaultColors = 4
	DefaultBonus  = 1000
)

type State uint8

const (
	Empty State = iota
	Filled
	Marked
)

func (s State) String() string {
	switch s {
	case Filled:
		return "filled"
	case Marked:
		return "marked"
	default:
		return "empty"
	}
}

// Cell is one grid position. Color is 1..Colors for Filled and Marked
// cells and 0 for Empty ones.
type Cell struct {
	State State
	Color int
}

type Options struct {
	Width, Height int
	Colors        int
	Bonus         int   // 0 picks DefaultBonus, negative disables it
	Seed          int64 // 0 seeds from the clock
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Colors <= 0 {
		o.Colors = DefaultColors
	}
	if o.Bonus < 0 {
		o.Bonus = 0
	} else if o.Bonus == 0 {
		o.Bonus = DefaultBonus
	}
	return o
}

// Session is one game. It is not safe for concurrent use.
type Session struct {
	w, h         int
	colors       int
	bonus        int
	cells        []Cell
	score        int
	marked       int
	bonusAwarded bool
	gameOver     bool
	rng          *rand.Rand
}

func New(opts Options) *Session {
	opts = opts.withDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		w:      opts.Width,
		h:      opts.Height,
		colors: opts.Colors,
		bonus:  opts.Bonus,
		cells:  make([]Cell, opts.Width*opts.Height),
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// FromColors builds a session from fixed rows, rows[y][x] being a color
// and 0 meaning Empty. Reset on such a session refills it with the default
// palette size.
func FromColors(rows [][]int) *Session {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	s := &Session{
		w:      w,
		h:      h,
		colors: DefaultColors,
		bonus:  DefaultBonus,
		cells:  make([]Cell, w*h),
		rng:    rand.New(rand.NewSource(1)),
	}
	for y, row := range rows {
		for x := 0; x < w && x < len(row); x++ {
			if c := row[x]; c > 0 {
				s.cells[y*w+x] = Cell{State: Filled, Color: c}
			}
		}
	}
	return s
}

func (s *Session) Reset() {
	for i := range s.cells {
		s.cells[i] = Cell{State: Filled, Color: s.rng.Intn(s.colors) + 1}
	}
	s.score = 0
	s.marked = 0
	s.bonusAwarded = false
	s.gameOver = false
}

func (s *Session) Width() int           { return s.w }
func (s *Session) Height() int          { return s.h }
func (s *Session) Score() int           { return s.score }
func (s *Session) Marked() int          { return s.marked }
func (s *Session) BonusAwarded() bool   { return s.bonusAwarded }
func (s *Session) GameOver() bool       { return s.gameOver }
func (s *Session) in(x, y int) bool     { return x >= 0 && y >= 0 && x < s.w && y < s.h }
func (s *Session) idx(x, y int) int     { return y*s.w + x }
func (s *Session) colorAt(x, y int) int { return s.At(x, y).Color }

// At returns the cell at (x, y). Out-of-bounds coordinates read as Empty.
func (s *Session) At(x, y int) Cell {
	if !s.in(x, y) {
		return Cell{}
	}
	return s.cells[s.idx(x, y)]
}

// Remaining counts the cells that still hold a tile.
func (s *Session) Remaining() int {
	n := 0
	for _, c := range s.cells {
		if c.State != Empty {
			n++
		}
	}
	return n
}

func (s *Session) String() string {
	var sb strings.Builder
	sb.Grow((s.w + 1) * s.h)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := s.cells[s.idx(x, y)]
			switch c.State {
			case Empty:
				sb.WriteByte('.')
			case Marked:
				sb.WriteByte(byte('a' + c.Color - 1))
			default:
				sb.WriteByte(byte('0' + c.Color))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
