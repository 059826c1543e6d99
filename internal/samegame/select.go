package samegame

type point struct{ X, Y int }

func (s *Session) around(x, y int, fn func(nx, ny int)) {
	fn(x-1, y)
	fn(x, y-1)
	fn(x+1, y)
	fn(x, y+1)
}

// Select marks the cluster containing (x, y) and returns its size. Any
// previously marked cluster is reverted first. Empty or out-of-bounds
// targets leave the session untouched.
func (s *Session) Select(x, y int) int {
	if s.gameOver || !s.in(x, y) || s.At(x, y).State == Empty {
		return s.marked
	}
	s.unmarkAll()

	c := s.colorAt(x, y)
	s.cells[s.idx(x, y)].State = Marked
	n := 1
	stack := []point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.around(p.X, p.Y, func(nx, ny int) {
			nc := s.At(nx, ny)
			if nc.State != Filled || nc.Color != c {
				return
			}
			s.cells[s.idx(nx, ny)].State = Marked
			n++
			stack = append(stack, point{nx, ny})
		})
	}
	s.marked = n
	return n
}

func (s *Session) unmarkAll() {
	for i := range s.cells {
		if s.cells[i].State == Marked {
			s.cells[i].State = Filled
		}
	}
	s.marked = 0
}
