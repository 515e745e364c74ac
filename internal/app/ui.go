package app

import (
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/statusbar"
	"github.com/bethropolis/leditor/internal/tui"
)

// drawEditor clears the screen and redraws every component.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: screen %dx%d, theme %s", width, height, activeTheme.Name)

	a.tuiManager.Clear()
	tui.DrawLevel(a.tuiManager, a.editor, activeTheme)
	a.statusBar.Draw(screen, width, height, activeTheme)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the editor state to the status bar.
func (a *App) updateStatusBarContent() {
	j := a.editor.Journal()
	info := statusbar.EditorInfo{
		Cursor:        a.editor.GetCursor(),
		Tool:          a.editor.Tool().String(),
		Brush:         a.editor.Brush().String(),
		Stroking:      a.editor.Stroking(),
		HistoryCursor: j.Cursor(),
		HistoryLen:    j.Len(),
	}
	if anchor, ok := a.editor.Anchor(); ok {
		info.Anchor = &anchor
	}
	a.statusBar.SetEditorInfo(info)
}

// SetStatusMessage shows a temporary message and schedules a redraw.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}

// requestRedraw sends a redraw signal without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
