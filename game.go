package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/go-samegame/internal/samegame"
	"github.com/04pril/go-samegame/internal/ui"
)

const (
	touchMoveSlopPx = 10
	touchTapMaxDur  = 500 * time.Millisecond
)

type touchStart struct {
	X, Y         int
	LastX, LastY int
	At           time.Time
}

type game struct {
	ctl         *ui.Controller
	themeIdx    int
	showHelp    bool
	fontMain    font.Face
	tiles       *tileSet
	touchStarts map[ebiten.TouchID]touchStart
}

func newGame(s *samegame.Session) *game {
	g := &game{
		ctl:         ui.NewController(s, log.Logger),
		fontMain:    basicfont.Face7x13,
		touchStarts: map[ebiten.TouchID]touchStart{},
	}
	g.tiles = newTileSet(themes[g.themeIdx])
	return g
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.ctl.Layout().ScreenSize()
}

func (g *game) handlePress(mx, my int) {
	if g.showHelp {
		g.showHelp = false
		return
	}
	g.ctl.Tap(mx, my)
}

func (g *game) handleTouchInput() {
	for _, id := range ebiten.TouchIDs() {
		x, y := ebiten.TouchPosition(id)
		st, ok := g.touchStarts[id]
		if !ok {
			g.touchStarts[id] = touchStart{X: x, Y: y, LastX: x, LastY: y, At: time.Now()}
			continue
		}
		st.LastX, st.LastY = x, y
		g.touchStarts[id] = st
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.touchStarts[id] = touchStart{X: x, Y: y, LastX: x, LastY: y, At: time.Now()}
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		st, ok := g.touchStarts[id]
		if !ok {
			continue
		}
		delete(g.touchStarts, id)

		dx := absInt(st.LastX - st.X)
		dy := absInt(st.LastY - st.Y)
		if dx > touchMoveSlopPx || dy > touchMoveSlopPx {
			continue
		}
		if time.Since(st.At) > touchTapMaxDur {
			continue
		}
		g.handlePress(st.LastX, st.LastY)
	}
}

func (g *game) handleGlobalKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIdx = (g.themeIdx + 1) % len(themes)
		g.tiles = newTileSet(themes[g.themeIdx])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyBoard()
	}
}

func (g *game) copyBoard() {
	if err := clipboard.WriteAll(g.ctl.Session().String()); err != nil {
		log.Warn().Err(err).Msg("copy board to clipboard")
		return
	}
	log.Debug().Msg("board copied to clipboard")
}

func (g *game) Update() error {
	g.handleGlobalKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.handlePress(mx, my)
	}

	g.handleTouchInput()
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
