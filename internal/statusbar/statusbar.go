// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Config struct {
	MessageTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// EditorInfo is the editor state summarised on the left of the bar.
type EditorInfo struct {
	Cursor   types.Position
	Tool     string
	Brush    string
	Stroking bool
	Anchor   *types.Position // pending rectangle corner, nil when none

	HistoryCursor int
	HistoryLen    int
}

type StatusBar struct {
	config Config
	mu     sync.RWMutex

	info       EditorInfo
	editorMode string
	command    string
	inCommand  bool

	tempMessage     string
	tempMessageTime time.Time
}

func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

func (sb *StatusBar) SetEditorInfo(info EditorInfo) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if info.Anchor != nil {
		anchor := *info.Anchor
		info.Anchor = &anchor
	}
	sb.info = info
}

func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetCommandInput shows ":"+buf in place of the status text while active.
func (sb *StatusBar) SetCommandInput(buf string, active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.command = buf
	sb.inCommand = active
}

// SetTemporaryMessage shows a message until MessageTimeout elapses.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line the bar would draw and the style name for it.
// Expired temporary messages are cleared as a side effect.
func (sb *StatusBar) Text() (string, string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.inCommand {
		return ":" + sb.command, theme.StyleStatusBarCommand
	}

	if !sb.tempMessageTime.IsZero() {
		if time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, theme.StyleStatusBarMessage
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	if sb.info.Anchor != nil {
		return sb.defaultText(), theme.StyleStatusBarPending
	}
	return sb.defaultText(), theme.StyleStatusBar
}

func (sb *StatusBar) defaultText() string {
	info := sb.info
	var b strings.Builder

	fmt.Fprintf(&b, "X: %d, Y: %d, L%d", info.Cursor.X, info.Cursor.Y, info.Cursor.Layer+1)
	if info.Tool != "" {
		fmt.Fprintf(&b, " -- %s", info.Tool)
	}
	if info.Brush != "" {
		fmt.Fprintf(&b, " [%s]", info.Brush)
	}
	if info.Stroking {
		b.WriteString(" +stroke")
	}
	if info.Anchor != nil {
		fmt.Fprintf(&b, " from (%d, %d)", info.Anchor.X, info.Anchor.Y)
	}
	fmt.Fprintf(&b, " -- history %d/%d", info.HistoryCursor+1, info.HistoryLen)
	if sb.editorMode != "" {
		fmt.Fprintf(&b, " -- %s", sb.editorMode)
	}
	return b.String()
}

// Draw renders the bar on the last screen row using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, styleName := sb.Text()
	style := th.GetStyle(styleName)

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
}
