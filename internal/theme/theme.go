// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer and the status bar.
const (
	StyleDefault          = "Default"
	StyleCursor           = "Cursor"
	StyleAnchor           = "Anchor"
	StyleSelection        = "Selection"
	StyleFeature          = "feature"
	StyleLowerLayer       = "layer.lower"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarPending = "StatusBarPending"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarCommand = "StatusBarCommand"
)

// GeoStyleName returns the style key for a terrain kind, e.g. "geo.solid".
// Unknown kinds fall back to the "geo" base style.
func GeoStyleName(t geo.GeoType) string {
	return "geo." + t.String()
}

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, then its base (part before the first dot), then
// "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// CaveDark is the built-in theme.
var CaveDark Theme

// CaveLight is a second built-in theme for light terminals.
var CaveLight Theme

func init() {
	bg := tcell.NewHexColor(0x1e2127)
	barBg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x4b5263)
	stone := tcell.NewHexColor(0x9da5b4)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	magenta := tcell.NewHexColor(0xc678dd)

	base := tcell.StyleDefault.Background(bg).Foreground(fg)

	CaveDark = Theme{
		Name:   "Cave Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:   base,
			StyleCursor:    base.Reverse(true),
			StyleAnchor:    base.Foreground(yellow).Bold(true),
			StyleSelection: base.Background(tcell.NewHexColor(0x3e4451)),
			StyleFeature:   base.Foreground(magenta).Bold(true),
			StyleLowerLayer: tcell.StyleDefault.Background(bg).
				Foreground(muted).Dim(true),

			"geo":                              base.Foreground(stone),
			GeoStyleName(geo.Air):              base.Foreground(muted),
			GeoStyleName(geo.Solid):            base.Foreground(stone).Bold(true),
			GeoStyleName(geo.Platform):         base.Foreground(orange),
			GeoStyleName(geo.Glass):            base.Foreground(cyan),
			GeoStyleName(geo.ShortcutEntrance): base.Foreground(green).Bold(true),

			StyleStatusBar:        tcell.StyleDefault.Background(barBg).Foreground(fg),
			StyleStatusBarPending: tcell.StyleDefault.Background(barBg).Foreground(yellow),
			StyleStatusBarMessage: tcell.StyleDefault.Background(barBg).Foreground(fg).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(barBg).Foreground(green).Bold(true),
		},
	}

	lightBg := tcell.NewHexColor(0xfafafa)
	lightFg := tcell.NewHexColor(0x383a42)
	lightBase := tcell.StyleDefault.Background(lightBg).Foreground(lightFg)

	CaveLight = Theme{
		Name: "Cave Light",
		Styles: map[string]tcell.Style{
			StyleDefault:    lightBase,
			StyleCursor:     lightBase.Reverse(true),
			StyleAnchor:     lightBase.Foreground(tcell.NewHexColor(0xc18401)).Bold(true),
			StyleSelection:  lightBase.Background(tcell.NewHexColor(0xe5e5e6)),
			StyleFeature:    lightBase.Foreground(tcell.NewHexColor(0xa626a4)).Bold(true),
			StyleLowerLayer: lightBase.Foreground(tcell.NewHexColor(0xc0c0c0)),

			"geo":                   lightBase.Foreground(tcell.NewHexColor(0x696c77)),
			GeoStyleName(geo.Air):   lightBase.Foreground(tcell.NewHexColor(0xc0c0c0)),
			GeoStyleName(geo.Solid): lightBase.Foreground(lightFg).Bold(true),

			StyleStatusBar:        tcell.StyleDefault.Background(tcell.NewHexColor(0xe5e5e6)).Foreground(lightFg),
			StyleStatusBarPending: tcell.StyleDefault.Background(tcell.NewHexColor(0xe5e5e6)).Foreground(tcell.NewHexColor(0xc18401)),
			StyleStatusBarMessage: tcell.StyleDefault.Background(tcell.NewHexColor(0xe5e5e6)).Foreground(lightFg).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(tcell.NewHexColor(0xe5e5e6)).Foreground(tcell.NewHexColor(0x50a14f)).Bold(true),
		},
	}
}
