package samegame

// Points is the score for clearing a cluster of n tiles: (n-2)^2.
func Points(n int) int {
	return n*n - 4*n + 4
}

// Preview is what committing the current selection would add to the score.
func (s *Session) Preview() int {
	if s.marked < 2 {
		return 0
	}
	return Points(s.marked)
}

// Commit clears the marked cluster, compacts the board and updates the
// score. It reports false and changes nothing when fewer than two cells are
// marked, which leaves a lone marked cell highlighted.
func (s *Session) Commit() bool {
	if s.gameOver || s.marked < 2 {
		return false
	}
	n := s.marked
	for i := range s.cells {
		if s.cells[i].State == Marked {
			s.cells[i] = Cell{}
		}
	}
	for x := 0; x < s.w; x++ {
		s.settleColumn(x)
	}
	s.packColumns()

	s.score += Points(n)
	s.marked = 0
	s.checkTerminal()
	return true
}

// settleColumn moves the tiles of column x to the bottom, keeping their
// order, and leaves the holes on top.
func (s *Session) settleColumn(x int) {
	dst := s.h - 1
	for y := s.h - 1; y >= 0; y-- {
		c := s.cells[s.idx(x, y)]
		if c.State == Empty {
			continue
		}
		s.cells[s.idx(x, dst)] = c
		dst--
	}
	for ; dst >= 0; dst-- {
		s.cells[s.idx(x, dst)] = Cell{}
	}
}

// packColumns shifts non-empty columns left over empty ones. Columns are
// already settled, so the bottom cell decides whether a column is empty.
func (s *Session) packColumns() {
	dst := 0
	for x := 0; x < s.w; x++ {
		if s.At(x, s.h-1).State == Empty {
			continue
		}
		if dst != x {
			for y := 0; y < s.h; y++ {
				s.cells[s.idx(dst, y)] = s.cells[s.idx(x, y)]
			}
		}
		dst++
	}
	for ; dst < s.w; dst++ {
		for y := 0; y < s.h; y++ {
			s.cells[s.idx(dst, y)] = Cell{}
		}
	}
}

// HasMoves reports whether any two 4-adjacent tiles share a color.
func (s *Session) HasMoves() bool {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := s.cells[s.idx(x, y)]
			if c.State == Empty {
				continue
			}
			// right and down cover every adjacent pair once
			if s.colorAt(x+1, y) == c.Color || s.colorAt(x, y+1) == c.Color {
				return true
			}
		}
	}
	return false
}

func (s *Session) checkTerminal() {
	if s.Remaining() == 0 && !s.bonusAwarded {
		s.bonusAwarded = true
		s.score += s.bonus
	}
	if !s.HasMoves() {
		s.gameOver = true
	}
}
