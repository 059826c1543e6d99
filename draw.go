package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/04pril/go-samegame/internal/samegame"
	"github.com/04pril/go-samegame/internal/ui"
)

type theme struct {
	Name         string
	Tiles        []color.RGBA
	BG           color.Color
	StatusBorder color.Color
	StatusBG     color.Color
	StatusText   color.Color
	Overlay      color.Color
}

var themes = []theme{
	{
		Name:         "Classic",
		Tiles:        []color.RGBA{hex(0x914e3b), hex(0x7b8376), hex(0x3d6287), hex(0xaf8652)},
		BG:           hex(0x303234),
		StatusBorder: hex(0x3c3f41),
		StatusBG:     hex(0x303234),
		StatusText:   hex(0xbdc3c7),
		Overlay:      color.RGBA{0, 0, 0, 160},
	},
	{
		Name:         "Bright",
		Tiles:        []color.RGBA{hex(0xd0453a), hex(0x4caf50), hex(0x2f80ed), hex(0xf2c94c)},
		BG:           hex(0x1b1d22),
		StatusBorder: hex(0x2a2d34),
		StatusBG:     hex(0x1b1d22),
		StatusText:   hex(0xf0f0f0),
		Overlay:      color.RGBA{0, 0, 0, 140},
	},
}

// tileSet holds one pre-rendered image per color for the filled and the
// marked look.
type tileSet struct {
	filled []*ebiten.Image
	marked []*ebiten.Image
}

func newTileSet(th theme) *tileSet {
	ts := &tileSet{}
	for _, c := range th.Tiles {
		ts.filled = append(ts.filled, createTile(c, false))
		ts.marked = append(ts.marked, createTile(c, true))
	}
	return ts
}

func (ts *tileSet) image(c samegame.Cell) *ebiten.Image {
	if c.State == samegame.Empty || c.Color < 1 || c.Color > len(ts.filled) {
		return nil
	}
	if c.State == samegame.Marked {
		return ts.marked[c.Color-1]
	}
	return ts.filled[c.Color-1]
}

func createTile(c color.RGBA, marked bool) *ebiten.Image {
	const n = ui.TileSize
	img := ebiten.NewImage(n, n)

	base := c
	if marked {
		base = brighter(c)
	}
	light := brighter(base)
	dark := darker(base)

	vector.DrawFilledRect(img, 0, 0, n, n, dark, false)
	vector.DrawFilledRect(img, 0, 0, n-1, n-1, base, false)
	vector.DrawFilledRect(img, 1, 1, n-3, n-3, light, false)
	vector.DrawFilledRect(img, 2, 2, n-4, n-4, blend(base, light), false)
	if marked {
		vector.DrawFilledRect(img, 8, 8, n-16, n-16, dark, false)
	}
	return img
}

func (g *game) Draw(screen *ebiten.Image) {
	th := themes[g.themeIdx]
	s := g.ctl.Session()
	l := g.ctl.Layout()
	screen.Fill(th.BG)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			img := g.tiles.image(s.At(x, y))
			if img == nil {
				continue
			}
			px, py := l.CellOrigin(x, y)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(px), float64(py))
			screen.DrawImage(img, op)
		}
	}

	w, h := l.ScreenSize()
	vector.DrawFilledRect(screen, 0, float32(h-ui.StatusBar), float32(w), ui.StatusBar, th.StatusBorder, false)
	for i, label := range ui.StatusTexts(s) {
		sx, sy, sw, sh := l.StatusSlot(i)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), th.StatusBG, false)
		drawTextCentered(screen, label, g.fontMain, sx, sy+2, sw, th.StatusText)
	}

	if g.showHelp {
		drawOverlayPanel(screen, "HELP", []string{
			"Click a group to mark it, click again to clear",
			"Score: (tiles - 2)^2, clear the board for +1000",
			"N: New game | T: Theme | C: Copy board",
			"F1: Toggle help",
		}, g.fontMain, th)
	}
}

func drawOverlayPanel(screen *ebiten.Image, title string, lines []string, f font.Face, th theme) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), th.Overlay, false)
	x, y := 16, 28
	text.Draw(screen, title, f, x, y, th.StatusText)
	y += 24
	for _, ln := range lines {
		text.Draw(screen, ln, f, x, y, th.StatusText)
		y += 20
		if y > h-8 {
			break
		}
	}
}

func drawTextCentered(screen *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(f, s)
	tw := b.Dx()
	text.Draw(screen, s, f, x+(w-tw)/2, y+13, clr)
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// brighter and darker follow the usual 0.7 scale step.
func brighter(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v < 3 {
			v = 3
		}
		n := int(float64(v) / 0.7)
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: 255}
}

func darker(c color.RGBA) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * 0.7), G: uint8(float64(c.G) * 0.7), B: uint8(float64(c.B) * 0.7), A: 255}
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 255,
	}
}
