// Package ui holds the toolkit-independent side of the front-end: screen
// geometry, gesture dispatch into the engine and status bar texts.
package ui

const (
	TileSize  = 30
	Border    = 4
	StatusBar = 24
)

// Layout is the screen geometry for a Width x Height board.
type Layout struct {
	Width, Height int
}

func (l Layout) boardW() int { return l.Width*TileSize + Border*2 }
func (l Layout) boardH() int { return l.Height*TileSize + Border*2 }

// ScreenSize is the window size: the board with its border plus the status
// bar underneath.
func (l Layout) ScreenSize() (int, int) {
	return l.boardW(), l.boardH() + StatusBar
}

// CellOrigin is the top-left pixel of cell (x, y).
func (l Layout) CellOrigin(x, y int) (int, int) {
	return Border + x*TileSize, Border + y*TileSize
}

// CellAt maps a pixel to a board cell.
func (l Layout) CellAt(px, py int) (int, int, bool) {
	if px < Border || py < Border {
		return 0, 0, false
	}
	x := (px - Border) / TileSize
	y := (py - Border) / TileSize
	if x >= l.Width || y >= l.Height {
		return 0, 0, false
	}
	return x, y, true
}

// StatusSlot returns the rectangle (x, y, w, h) of status bar slot i, 0..2.
func (l Layout) StatusSlot(i int) (int, int, int, int) {
	w := l.boardW() / 3
	return w*i + 1, l.boardH() + 1, w - 2, StatusBar - 2
}

// NewGameHit reports whether the pixel is on the "New Game" slot.
func (l Layout) NewGameHit(px, py int) bool {
	top := l.boardH()
	return px > 0 && px < l.boardW()/3-1 && py > top && py < top+StatusBar-1
}
