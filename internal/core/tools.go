package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
)

// Tool selects what a rectangle click or paint gesture does.
type Tool int

const (
	ToolPaint     Tool = iota // paint the brush terrain cell by cell
	ToolRectSolid             // fill a rectangle with solid terrain
	ToolRectAir               // clear a rectangle's terrain to air
	ToolEraseAll              // wipe a rectangle on every layer
	ToolBackCopy              // copy terrain onto the layer behind
	ToolCopy                  // copy a rectangle into memory
	ToolNoise                 // fill a rectangle from a noise field
)

var toolNames = []string{"paint", "rect-solid", "rect-air", "erase-all", "back-copy", "copy", "noise"}

// Tools lists every tool in selection order.
var Tools = []Tool{ToolPaint, ToolRectSolid, ToolRectAir, ToolEraseAll, ToolBackCopy, ToolCopy, ToolNoise}

func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// IsRect reports whether the tool works on a two-click rectangle.
func (t Tool) IsRect() bool {
	return t != ToolPaint
}

// ParseTool resolves a tool name or its 1-based number.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if name == s {
			return Tool(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(toolNames) {
		return Tool(n - 1), nil
	}
	return ToolPaint, fmt.Errorf("unknown tool '%s'", s)
}

func (e *Editor) Tool() Tool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tool
}

// SetTool switches tools. A pending rectangle is dropped without trace.
func (e *Editor) SetTool(t Tool) {
	e.mu.Lock()
	if e.tool == t {
		e.mu.Unlock()
		return
	}
	e.tool = t
	e.hasAnchor = false
	e.mu.Unlock()

	logger.Debugf("Editor: tool set to %s", t)
	e.publish(outcome{tool: true})
}

// Brush is the terrain painted by PaintCell and strokes.
func (e *Editor) Brush() geo.GeoType {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.brush
}

// SetBrush changes the painted terrain. Any slope type selects automatic
// slope orientation.
func (e *Editor) SetBrush(t geo.GeoType) error {
	if !t.Valid() {
		return fmt.Errorf("invalid brush terrain %d", int(t))
	}
	e.mu.Lock()
	e.brush = t
	e.mu.Unlock()
	e.publish(outcome{tool: true})
	return nil
}
