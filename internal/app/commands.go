package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
)

var errUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

// registerAppCommands registers the built-in : commands.
func registerAppCommands(a *App) {
	api := a.editorAPI
	cmds := map[string]plugin.CommandFunc{
		"undo":    a.cmdUndo,
		"redo":    a.cmdRedo,
		"history": a.cmdHistory,
		"layer":   a.cmdLayer,
		"tool":    a.cmdTool,
		"brush":   a.cmdBrush,
		"feature": a.cmdFeature,
		"resize":  a.cmdResize,
		"new":     a.cmdNew,
		"seed":    a.cmdSeed,
		"yank":    a.cmdYank,
		"put":     a.cmdPut,
		"q":       a.cmdQuit,
		"help":    a.cmdHelp,
	}
	for name, fn := range theme.Commands(api) {
		cmds[name] = fn
	}

	for name, fn := range cmds {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

// count parses an optional repeat count, defaulting to 1.
func count(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("count must be a positive number, got '%s'", args[0])
	}
	return n, nil
}

func (a *App) repeat(args []string, step func() bool, verb string) error {
	n, err := count(args)
	if err != nil {
		return err
	}
	done := 0
	for done < n && step() {
		done++
	}
	if done == 0 {
		a.SetStatusMessage("Nothing to %s", verb)
		return nil
	}
	j := a.editor.Journal()
	a.SetStatusMessage("%s %d, history %d/%d", verb, done, j.Cursor()+1, j.Len())
	return nil
}

func (a *App) cmdUndo(args []string) error { return a.repeat(args, a.editor.Undo, "undo") }

func (a *App) cmdRedo(args []string) error { return a.repeat(args, a.editor.Redo, "redo") }

// cmdHistory summarises the journal and names the action undo would revert.
func (a *App) cmdHistory([]string) error {
	j := a.editor.Journal()
	msg := fmt.Sprintf("history %d/%d (cap %d)", j.Cursor()+1, j.Len(), j.Capacity())
	if cur, ok := j.Current(); ok {
		msg += " | next undo: " + cur.String()
	}
	if session := j.Session(); len(session) >= 8 {
		msg += " | session " + session[:8]
	}
	a.SetStatusMessage("%s", msg)
	return nil
}

func (a *App) cmdLayer(args []string) error {
	if len(args) != 1 {
		return usage("layer N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w '%s'", core.ErrInvalidLayer, args[0])
	}
	if err := a.editor.SetLayer(n - 1); err != nil {
		return err
	}
	a.SetStatusMessage("Layer %d", n)
	return nil
}

func (a *App) cmdTool(args []string) error {
	if len(args) != 1 {
		names := make([]string, len(core.Tools))
		for i, t := range core.Tools {
			names[i] = t.String()
		}
		return usage("tool " + strings.Join(names, "|"))
	}
	t, err := core.ParseTool(args[0])
	if err != nil {
		return err
	}
	a.editor.SetTool(t)
	a.SetStatusMessage("Tool: %s", t)
	return nil
}

func (a *App) cmdBrush(args []string) error {
	if len(args) != 1 {
		return usage("brush GEO")
	}
	t, err := geo.ParseGeoType(args[0])
	if err != nil {
		return err
	}
	if err := a.editor.SetBrush(t); err != nil {
		return err
	}
	a.SetStatusMessage("Brush: %s", t)
	return nil
}

func (a *App) cmdFeature(args []string) error {
	if len(args) != 1 {
		return usage("feature NAME")
	}
	id, err := geo.ParseFeatureID(args[0])
	if err != nil {
		return err
	}
	if !a.editor.ToggleFeature(id) {
		a.SetStatusMessage("No change")
	}
	return nil
}

func parseSize(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errUsage
	}
	w, errW := strconv.Atoi(args[0])
	h, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("size must be two numbers, got '%s %s'", args[0], args[1])
	}
	return w, h, nil
}

func (a *App) cmdResize(args []string) error {
	w, h, err := parseSize(args)
	if errors.Is(err, errUsage) {
		return usage("resize W H")
	}
	if err != nil {
		return err
	}
	return a.editor.Resize(w, h)
}

// cmdNew starts a fresh level, by default with the configured size.
func (a *App) cmdNew(args []string) error {
	w, h := a.cfg.Editor.LevelWidth, a.cfg.Editor.LevelHeight
	if len(args) > 0 {
		var err error
		if w, h, err = parseSize(args); errors.Is(err, errUsage) {
			return usage("new [W H]")
		} else if err != nil {
			return err
		}
	}
	return a.editor.NewLevel(w, h)
}

func (a *App) cmdSeed(args []string) error {
	if len(args) == 0 {
		a.SetStatusMessage("Noise seed: %d", a.editor.Seed())
		return nil
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("seed must be a number, got '%s'", args[0])
	}
	a.editor.SetSeed(seed)
	a.SetStatusMessage("Noise seed: %d", a.editor.Seed())
	return nil
}

func (a *App) cmdYank([]string) error {
	mem := a.editor.Memory()
	if mem == nil {
		return core.ErrNoMemory
	}
	if err := a.clipboard.Yank(mem); err != nil {
		return err
	}
	a.SetStatusMessage("Yanked %dx%d region to the system clipboard", mem.Width(), mem.Height())
	return nil
}

func (a *App) cmdPut([]string) error {
	r, err := a.clipboard.Put()
	if err != nil {
		return err
	}
	a.editor.SetMemory(r)
	a.SetStatusMessage("Put %dx%d region from the system clipboard", r.Width(), r.Height())
	return nil
}

func (a *App) cmdQuit([]string) error {
	a.modeHandler.Quit()
	return nil
}

func (a *App) cmdHelp([]string) error {
	a.SetStatusMessage("Commands: %s | layers 1-%d", strings.Join(a.modeHandler.Commands(), " "), types.LayerCount)
	return nil
}
