package samegame

import "testing"

func countMarked(s *Session) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y).State == Marked {
				n++
			}
		}
	}
	return n
}

func TestSelect_MarksConnectedCluster(t *testing.T) {
	s := FromColors([][]int{
		{1, 1, 2},
		{1, 2, 2},
		{3, 1, 2},
	})
	if n := s.Select(0, 0); n != 3 {
		t.Fatalf("Select(0,0)=%d, want 3", n)
	}
	for _, p := range []point{{0, 0}, {1, 0}, {0, 1}} {
		if s.At(p.X, p.Y).State != Marked {
			t.Errorf("(%d,%d) should be marked", p.X, p.Y)
		}
	}
	// diagonal neighbour of the cluster, same color
	if s.At(1, 2).State != Filled {
		t.Fatal("(1,2) is not 4-connected and must stay filled")
	}
	if s.Marked() != countMarked(s) {
		t.Fatalf("Marked()=%d, grid has %d", s.Marked(), countMarked(s))
	}
	if s.Score() != 0 {
		t.Fatal("select must not touch the score")
	}
}

func TestSelect_RevertsPreviousCluster(t *testing.T) {
	s := FromColors([][]int{
		{1, 1, 2},
		{1, 2, 2},
		{3, 1, 2},
	})
	s.Select(0, 0)
	if n := s.Select(2, 0); n != 4 {
		t.Fatalf("Select(2,0)=%d, want 4", n)
	}
	if s.At(0, 0).State != Filled || s.At(0, 0).Color != 1 {
		t.Fatalf("old cluster not reverted: %+v", s.At(0, 0))
	}
	if countMarked(s) != 4 {
		t.Fatalf("marked cells=%d, want 4", countMarked(s))
	}
}

func TestSelect_Singleton(t *testing.T) {
	s := FromColors([][]int{{1, 2, 1}})
	if n := s.Select(1, 0); n != 1 {
		t.Fatalf("Select(1,0)=%d, want 1", n)
	}
	if s.At(1, 0).State != Marked {
		t.Fatal("singleton should still be marked")
	}
}

func TestSelect_EmptyAndOutOfBoundsAreNoOps(t *testing.T) {
	s := FromColors([][]int{
		{0, 2, 2},
		{1, 2, 3},
	})
	s.Select(1, 0)
	before := s.String()
	for _, p := range []point{{0, 0}, {-1, 0}, {3, 1}} {
		if n := s.Select(p.X, p.Y); n != 3 {
			t.Errorf("Select(%d,%d)=%d, want unchanged 3", p.X, p.Y, n)
		}
		if s.String() != before {
			t.Errorf("Select(%d,%d) changed the grid:\n%s", p.X, p.Y, s)
		}
	}
}

func TestSelect_MarkedTargetReselectsSameCluster(t *testing.T) {
	s := FromColors([][]int{{2, 2, 2, 1}})
	s.Select(0, 0)
	if n := s.Select(2, 0); n != 3 {
		t.Fatalf("Select on marked cell=%d, want 3", n)
	}
}

func TestSelect_LargeBoardNoRecursionLimit(t *testing.T) {
	const w, h = 400, 300
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = 1
		}
	}
	s := FromColors(rows)
	if n := s.Select(w/2, h/2); n != w*h {
		t.Fatalf("Select=%d, want %d", n, w*h)
	}
}

func TestSelect_MatchesReachableRegion(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := New(Options{Width: 9, Height: 7, Colors: 3, Seed: seed})
		x, y := int(seed)%9, int(seed)%7
		want := reachable(s, x, y)
		if got := s.Select(x, y); got != want {
			t.Fatalf("seed %d: Select(%d,%d)=%d, want %d", seed, x, y, got, want)
		}
		if countMarked(s) != want {
			t.Fatalf("seed %d: marked cells=%d, want %d", seed, countMarked(s), want)
		}
	}
}

// reachable counts the 4-connected same-color region with a visited set,
// independent of the marking in Select.
func reachable(s *Session, x, y int) int {
	c := s.At(x, y).Color
	seen := map[point]bool{{x, y}: true}
	queue := []point{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			q := point{p.X + d.X, p.Y + d.Y}
			if seen[q] || s.At(q.X, q.Y).State == Empty || s.At(q.X, q.Y).Color != c {
				continue
			}
			seen[q] = true
			queue = append(queue, q)
		}
	}
	return len(seen)
}
