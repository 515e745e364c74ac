package modehandler

import (
	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/input"
	"github.com/bethropolis/leditor/internal/logger"
)

var moves = map[input.Action][2]int{
	input.ActionMoveUp:        {0, -1},
	input.ActionMoveDown:      {0, 1},
	input.ActionMoveLeft:      {-1, 0},
	input.ActionMoveRight:     {1, 0},
	input.ActionMoveFastUp:    {0, -fastStep},
	input.ActionMoveFastDown:  {0, fastStep},
	input.ActionMoveFastLeft:  {-fastStep, 0},
	input.ActionMoveFastRight: {fastStep, 0},
}

// executeAction runs a normal-mode action. It reports whether anything
// visible may have changed.
func (mh *ModeHandler) executeAction(ae input.ActionEvent) bool {
	if ae.Action == input.ActionUnknown {
		return false
	}
	if ae.Action != input.ActionQuit {
		mh.forceQuitPending = false
	}

	if d, ok := moves[ae.Action]; ok {
		mh.editor.MoveCursor(d[0], d[1])
		return true
	}

	switch ae.Action {
	case input.ActionEnterCommandMode:
		mh.editor.EndStroke()
		mh.editor.CancelRect()
		mh.cmdBuffer = ""
		mh.setMode(ModeCommand)
		logger.Debugf("ModeHandler: Entering Command Mode")

	case input.ActionQuit:
		mh.handleQuit()

	case input.ActionForceQuit:
		mh.Quit()
		return false

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}

	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionPaint:
		mh.editor.PaintCell()

	case input.ActionToggleStroke:
		if mh.editor.Stroking() {
			mh.editor.EndStroke()
		} else {
			mh.editor.BeginStroke()
		}

	case input.ActionRectClick:
		if err := mh.editor.RectClick(); err != nil {
			mh.statusBar.SetTemporaryMessage("%s failed: %v", mh.editor.Tool(), err)
		}

	case input.ActionPaste:
		if err := mh.editor.PasteMemory(); err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		}

	case input.ActionSelectTool:
		if ae.Tool < 0 || ae.Tool >= len(core.Tools) {
			return false
		}
		mh.editor.SetTool(core.Tools[ae.Tool])
		mh.statusBar.SetTemporaryMessage("Tool: %s", core.Tools[ae.Tool])

	case input.ActionSelectBrush:
		if err := mh.editor.SetBrush(ae.Geo); err != nil {
			mh.statusBar.SetTemporaryMessage("%v", err)
		}

	case input.ActionToggleFeature:
		mh.editor.ToggleFeature(ae.Feature)

	case input.ActionCycleLayer:
		mh.editor.CycleLayer()

	default:
		return false
	}
	return true
}

// handleQuit makes Escape cancel a pending stroke or rectangle first. With
// nothing pending and a non-empty journal it asks for a second press.
func (mh *ModeHandler) handleQuit() {
	if mh.editor.Cancel() {
		mh.forceQuitPending = false
		mh.statusBar.SetTemporaryMessage("Cancelled")
		return
	}
	if mh.editor.Journal().Len() > 0 && !mh.forceQuitPending {
		mh.forceQuitPending = true
		mh.statusBar.SetTemporaryMessage("Level has edits! Press ESC again or Ctrl+Q to quit.")
		return
	}
	mh.Quit()
}
