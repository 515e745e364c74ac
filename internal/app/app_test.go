package app

import (
	"testing"
	"time"

	"github.com/bethropolis/leditor/internal/config"
	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/core/clipboard"
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct{ text string }

func (m *memoryBackend) ReadAll() (string, error)   { return m.text, nil }
func (m *memoryBackend) WriteAll(text string) error { m.text = text; return nil }

func newTestApp(t *testing.T) (*App, *memoryBackend) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.LevelWidth = 12
	cfg.Editor.LevelHeight = 8
	cfg.Editor.HistoryLimit = 10
	cfg.Editor.NoiseSeed = 3

	backend := &memoryBackend{}
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := newApp(cfg, screen, clipboard.NewManagerWithBackend(backend), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(a.tuiManager.Close)
	return a, backend
}

func (a *App) run(line string) string {
	a.modeHandler.ExecuteCommand(line)
	text, _ := a.statusBar.Text()
	return text
}

func paint(t *testing.T, a *App, x, y int, brush geo.GeoType) {
	t.Helper()
	a.editor.SetCursor(types.Position{X: x, Y: y})
	require.NoError(t, a.editor.SetBrush(brush))
	require.True(t, a.editor.PaintCell())
}

func cellAt(a *App, x, y, layer int) geo.GeoType {
	c, _ := a.editor.Cell(types.Position{X: x, Y: y, Layer: layer})
	return c.Type
}

func TestCommandsRegistered(t *testing.T) {
	a, _ := newTestApp(t)
	for _, name := range []string{
		"undo", "redo", "history", "layer", "tool", "brush", "feature", "resize",
		"new", "seed", "yank", "put", "theme", "themes", "q", "help", "stats",
	} {
		assert.Contains(t, a.modeHandler.Commands(), name)
	}
}

func TestUndoRedoCommands(t *testing.T) {
	a, _ := newTestApp(t)
	paint(t, a, 1, 1, geo.Air)
	paint(t, a, 2, 1, geo.Glass)

	assert.Equal(t, "undo 2, history 0/2", a.run("undo 5"))
	assert.Equal(t, geo.Solid, cellAt(a, 1, 1, 0))
	assert.Equal(t, geo.Solid, cellAt(a, 2, 1, 0))

	assert.Equal(t, "Nothing to undo", a.run("undo"))
	assert.Equal(t, "redo 1, history 1/2", a.run("redo"))
	assert.Equal(t, geo.Air, cellAt(a, 1, 1, 0))

	assert.Contains(t, a.run("undo x"), "count must be a positive number")
}

func TestHistoryCommand(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, "history 0/0 (cap 10)", a.run("history")[:len("history 0/0 (cap 10)")])

	paint(t, a, 0, 0, geo.Air)
	msg := a.run("history")
	assert.Contains(t, msg, "history 1/1 (cap 10) | next undo: ")
	assert.Contains(t, msg, "session "+a.editor.Journal().Session()[:8])
}

func TestLayerToolBrushCommands(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, "Layer 3", a.run("layer 3"))
	assert.Equal(t, 2, a.editor.GetCursor().Layer)
	assert.Contains(t, a.run("layer 4"), "invalid layer")
	assert.Contains(t, a.run("layer"), "usage: layer N")

	assert.Equal(t, "Tool: noise", a.run("tool noise"))
	assert.Equal(t, core.ToolNoise, a.editor.Tool())
	assert.Contains(t, a.run("tool"), "paint|rect-solid")

	assert.Equal(t, "Brush: glass", a.run("brush glass"))
	assert.Equal(t, geo.Glass, a.editor.Brush())
	assert.Contains(t, a.run("brush lava"), "unknown geo type")
}

func TestFeatureCommand(t *testing.T) {
	a, _ := newTestApp(t)
	a.run("feature pole-v")

	c, _ := a.editor.Cell(types.Position{})
	assert.True(t, c.Has(geo.VerticalPole))
	assert.Equal(t, 1, a.editor.Journal().Len())
}

func TestResizeAndNewClearHistory(t *testing.T) {
	a, _ := newTestApp(t)
	paint(t, a, 0, 0, geo.Air)

	assert.Equal(t, "Level 20x6, history cleared", a.run("resize 20 6"))
	assert.Equal(t, 20, a.editor.Width())
	assert.Equal(t, 0, a.editor.Journal().Len())

	assert.Contains(t, a.run("resize 0 6"), "Error executing command 'resize'")
	assert.Contains(t, a.run("resize 4"), "usage: resize W H")

	paint(t, a, 0, 0, geo.Air)
	a.run("new")
	assert.Equal(t, 12, a.editor.Width())
	assert.Equal(t, 8, a.editor.Height())
	assert.Equal(t, 0, a.editor.Journal().Len())
}

func TestSeedCommand(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, "Noise seed: 3", a.run("seed"))
	assert.Equal(t, "Noise seed: 42", a.run("seed 42"))
	assert.Equal(t, int64(42), a.editor.Seed())
}

func TestYankAndPut(t *testing.T) {
	a, backend := newTestApp(t)

	assert.Contains(t, a.run("yank"), core.ErrNoMemory.Error())

	a.editor.SetTool(core.ToolCopy)
	require.NoError(t, a.editor.RectClick())
	a.editor.SetCursor(types.Position{X: 1, Y: 1})
	require.NoError(t, a.editor.RectClick())
	require.NotNil(t, a.editor.Memory())

	assert.Equal(t, "Yanked 2x2 region to the system clipboard", a.run("yank"))
	assert.NotEmpty(t, backend.text)

	a.editor.SetMemory(nil)
	assert.Equal(t, "Put 2x2 region from the system clipboard", a.run("put"))
	assert.Equal(t, 2, a.editor.Memory().Width())

	backend.text = "garbage"
	assert.Contains(t, a.run("put"), "Error executing command 'put'")
}

func TestThemeCommandsDispatchEvent(t *testing.T) {
	a, _ := newTestApp(t)
	var changed []string
	a.eventManager.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		changed = append(changed, e.Data.(event.ThemeChangedData).Theme)
		return false
	})

	assert.Equal(t, "Theme set to: Cave Light", a.run("theme cave light"))
	assert.Equal(t, "Cave Light", a.GetTheme().Name)
	assert.Equal(t, []string{"Cave Light"}, changed)

	assert.Contains(t, a.run("theme nope"), "theme not found")
}

func TestStatsPluginWired(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Contains(t, a.run("stats"), "L1: solid 96")
}

func TestEditorAPI(t *testing.T) {
	a, _ := newTestApp(t)
	api := a.editorAPI

	w, h := api.GetLevelSize()
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)

	api.SetCursor(types.Position{X: 3, Y: 4})
	assert.Equal(t, types.Position{X: 3, Y: 4}, api.GetCursor())

	paint(t, a, 3, 4, geo.Air)
	c, ok := api.GetCell(types.Position{X: 3, Y: 4})
	require.True(t, ok)
	assert.Equal(t, geo.Air, c.Type)
	assert.Equal(t, 1, api.CountCells(0)[geo.Air])

	hs := api.HistoryState()
	assert.Equal(t, 0, hs.Cursor)
	assert.Equal(t, 1, hs.Len)
	assert.Equal(t, 10, hs.Capacity)
	assert.NotEmpty(t, hs.Session)

	assert.True(t, api.Undo())
	assert.True(t, api.Redo())
	assert.False(t, api.Redo())

	assert.Equal(t, a.GetTheme().GetStyle("Cursor"), api.GetThemeStyle("Cursor"))
}

func TestStatusBarReflectsEditor(t *testing.T) {
	a, _ := newTestApp(t)
	a.statusBar.ResetTemporaryMessage()
	a.editor.SetTool(core.ToolRectSolid)
	require.NoError(t, a.editor.RectClick())

	a.drawEditor()
	text, _ := a.statusBar.Text()
	assert.Equal(t, "X: 0, Y: 0, L1 -- rect-solid [solid] from (0, 0) -- history 0/0 -- NORMAL", text)
}

func TestRunStopsOnQuit(t *testing.T) {
	a, _ := newTestApp(t)
	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	a.run("q")
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after :q")
	}
}

func TestStartupHintNamesUndoKeys(t *testing.T) {
	assert.Contains(t, startupHint, "Ctrl+Z")
	assert.Contains(t, startupHint, "Ctrl+Y")
}
