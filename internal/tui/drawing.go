// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/leditor/internal/config"
	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/render"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
)

// viewSize is the screen area left for the level above the status bar.
func (t *TUI) viewSize() (int, int) {
	w, h := t.Size()
	return w, h - config.StatusBarHeight
}

// DrawLevel draws the visible part of the current layer, with the layers
// behind it dimmed, the pending rectangle and its anchor, and the cursor cell.
func DrawLevel(t *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawLevel called with nil theme, using built-in default.")
		activeTheme = &theme.CaveDark
	}

	viewW, viewH := t.viewSize()
	if viewW <= 0 || viewH <= 0 {
		return
	}

	cursor := editor.GetCursor()
	levelW, levelH := editor.Width(), editor.Height()
	offX, offY := render.Viewport(cursor, levelW, levelH, viewW, viewH)

	frame := render.Frame{Active: cursor.Layer}
	for l := range frame.Layers {
		frame.Layers[l] = editor.LayerSnapshot(l)
	}

	rect, pending := editor.PendingRect()
	anchor, _ := editor.Anchor()

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	selectionBg := selectionBackground(activeTheme)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			x, y := sx+offX, sy+offY
			if x >= levelW || y >= levelH {
				t.screen.SetContent(sx, sy, ' ', nil, defaultStyle)
				continue
			}

			g := frame.GlyphAt(x, y)
			style := activeTheme.GetStyle(g.Style)

			switch {
			case x == cursor.X && y == cursor.Y:
				style = activeTheme.GetStyle(theme.StyleCursor)
			case pending && x == anchor.X && y == anchor.Y:
				style = activeTheme.GetStyle(theme.StyleAnchor)
			case pending && rect.Contains(x, y):
				style = style.Background(selectionBg)
			}
			t.screen.SetContent(sx, sy, g.Rune, nil, style)
		}
	}
}

func selectionBackground(th *theme.Theme) tcell.Color {
	_, bg, _ := th.GetStyle(theme.StyleSelection).Decompose()
	return bg
}

// DrawCursor places the terminal cursor on the edited cell, or hides it when
// the cell is off screen.
func DrawCursor(t *TUI, editor *core.Editor) {
	viewW, viewH := t.viewSize()
	cursor := editor.GetCursor()
	offX, offY := render.Viewport(cursor, editor.Width(), editor.Height(), viewW, viewH)

	sx, sy := cursor.X-offX, cursor.Y-offY
	if !onScreen(types.Position{X: sx, Y: sy}, viewW, viewH) {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(sx, sy)
}

func onScreen(p types.Position, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
