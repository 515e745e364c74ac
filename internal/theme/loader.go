// internal/theme/loader.go
package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// styleDef is one entry of the [styles] table. Pointers detect unset keys
// so they can inherit from Default.
type styleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Dim       *bool   `toml:"dim"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

type themeFile struct {
	Name   string              `toml:"name"`
	IsDark bool                `toml:"is_dark"`
	Styles map[string]styleDef `toml:"styles"`
}

// LoadThemeFromFile reads a TOML theme. A file without a name is named
// after its base filename.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	defer f.Close()

	fallback := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	theme, err := LoadTheme(f, fallback)
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", filePath, err)
	}
	return theme, nil
}

// LoadTheme decodes a TOML theme from r.
func LoadTheme(r io.Reader, fallbackName string) (*Theme, error) {
	var tf themeFile
	metadata, err := toml.NewDecoder(r).Decode(&tf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme: %w", err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': unrecognized keys: %v", tf.Name, undecoded)
	}
	if tf.Name == "" {
		tf.Name = fallbackName
		logger.Debugf("Theme without 'name', using '%s'", tf.Name)
	}

	theme := &Theme{
		Name:   tf.Name,
		IsDark: tf.IsDark,
		Styles: make(map[string]tcell.Style, len(tf.Styles)+1),
	}

	base := tcell.StyleDefault
	if def, ok := tf.Styles[StyleDefault]; ok {
		if base, err = def.apply(tcell.StyleDefault); err != nil {
			logger.Warnf("Theme '%s': bad 'Default' style, using terminal default: %v", theme.Name, err)
			base = tcell.StyleDefault
		}
	}
	theme.Styles[StyleDefault] = base

	for name, def := range tf.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := def.apply(base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' with %d styles", theme.Name, len(theme.Styles))
	return theme, nil
}

func (d styleDef) apply(style tcell.Style) (tcell.Style, error) {
	if d.Fg != nil {
		color, err := parseColor(*d.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if d.Bg != nil {
		color, err := parseColor(*d.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background: %w", err)
		}
		style = style.Background(color)
	}
	if d.Bold != nil {
		style = style.Bold(*d.Bold)
	}
	if d.Dim != nil {
		style = style.Dim(*d.Dim)
	}
	if d.Italic != nil {
		style = style.Italic(*d.Italic)
	}
	if d.Underline != nil {
		style = style.Underline(*d.Underline)
	}
	if d.Reverse != nil {
		style = style.Reverse(*d.Reverse)
	}
	return style, nil
}

// parseColor accepts #RRGGBB, "reset", "default" or a W3C/tcell color name.
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("'%s' must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
