package input

import (
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/gdamore/tcell/v2"
)

type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]ActionEvent
type ModKeymap map[tcell.ModMask]Keymap

// ToolKeys is the number of tools selectable with the digit keys.
const ToolKeys = 7

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// featureKeys binds one rune per named feature.
var featureKeys = map[rune]geo.FeatureID{
	'-': geo.HorizontalPole,
	'|': geo.VerticalPole,
	't': geo.Bathive,
	'i': geo.FeatureShortcutEntrance,
	'o': geo.ShortcutPath,
	'n': geo.RoomEntrance,
	'd': geo.DragonDen,
	'r': geo.PlaceRock,
	'x': geo.PlaceSpear,
	'c': geo.CrackedTerrain,
	'f': geo.ForbidFlyChains,
	'y': geo.GarbageWormHole,
	'w': geo.Waterfall,
	'm': geo.WackAMoleHole,
	'z': geo.WormGrass,
	'v': geo.ScavengerHole,
}

var brushKeys = map[rune]geo.GeoType{
	's': geo.Solid,
	'a': geo.Air,
	'g': geo.Glass,
	'p': geo.Platform,
	'/': geo.SlopeNE, // any slope picks its orientation from neighbours
	'e': geo.ShortcutEntrance,
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMoveFastUp
	p.keymap[tcell.KeyPgDn] = ActionMoveFastDown
	p.keymap[tcell.KeyEnter] = ActionRectClick
	p.keymap[tcell.KeyTab] = ActionCycleLayer
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionMoveFastUp
	shiftMap[tcell.KeyDown] = ActionMoveFastDown
	shiftMap[tcell.KeyLeft] = ActionMoveFastLeft
	shiftMap[tcell.KeyRight] = ActionMoveFastRight
	p.modKeymap[tcell.ModShift] = shiftMap

	for r, a := range map[rune]Action{
		'h': ActionMoveLeft, 'j': ActionMoveDown, 'k': ActionMoveUp, 'l': ActionMoveRight,
		'H': ActionMoveFastLeft, 'J': ActionMoveFastDown, 'K': ActionMoveFastUp, 'L': ActionMoveFastRight,
		' ': ActionPaint,
		'b': ActionToggleStroke,
		'u': ActionUndo,
		'U': ActionRedo,
		'P': ActionPaste,
		':': ActionEnterCommandMode,
	} {
		p.runeKeymap[r] = ActionEvent{Action: a, Rune: r}
	}
	for i := 0; i < ToolKeys; i++ {
		r := rune('1' + i)
		p.runeKeymap[r] = ActionEvent{Action: ActionSelectTool, Rune: r, Tool: i}
	}
	for r, t := range brushKeys {
		p.runeKeymap[r] = ActionEvent{Action: ActionSelectBrush, Rune: r, Geo: t}
	}
	for r, id := range featureKeys {
		p.runeKeymap[r] = ActionEvent{Action: ActionToggleFeature, Rune: r, Feature: id}
	}
}

// ProcessEvent decodes a key press made in normal mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already carry the modifier in the key itself.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			if ae, ok := p.runeKeymap[ev.Rune()]; ok {
				return ae
			}
		}
		return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	return ActionEvent{Action: ActionUnknown}
}

// ProcessCommandEvent decodes a key press made while typing a command:
// every rune is text.
func (p *InputProcessor) ProcessCommandEvent(ev *tcell.EventKey) ActionEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	case tcell.KeyEnter:
		return ActionEvent{Action: ActionExecuteCommand}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionEvent{Action: ActionDeleteCharBackward}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionEvent{Action: ActionQuit}
	}
	return ActionEvent{Action: ActionUnknown}
}
