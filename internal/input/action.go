package input

import "github.com/bethropolis/leditor/internal/geo"

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit           // Esc: cancels a pending gesture first
	ActionForceQuit

	// Cursor movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveFastUp
	ActionMoveFastDown
	ActionMoveFastLeft
	ActionMoveFastRight

	// Editing
	ActionUndo
	ActionRedo
	ActionPaint
	ActionToggleStroke
	ActionRectClick
	ActionPaste
	ActionSelectTool    // Tool carries the 0-based tool index
	ActionSelectBrush   // Geo carries the terrain
	ActionToggleFeature // Feature carries the slot
	ActionCycleLayer

	// Command line
	ActionEnterCommandMode
	ActionInsertRune
	ActionExecuteCommand
	ActionDeleteCharBackward
)

// ActionEvent is a decoded key press and its payload.
type ActionEvent struct {
	Action  Action
	Rune    rune
	Tool    int
	Geo     geo.GeoType
	Feature geo.FeatureID
}
